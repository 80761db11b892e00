package listing

type CreateListingRequest struct {
	SitterID         int64    `json:"sitter_id" binding:"required"`
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required,min=10"`
	ServicesOffered  []string `json:"services_offered" binding:"required,min=1"`
	PricePerHour     float64  `json:"price_per_hour" binding:"required"`
	PricePerDay      *float64 `json:"price_per_day"`
	PricePerNight    *float64 `json:"price_per_night"`
	MaxDogs          int      `json:"max_dogs" binding:"required,min=1"`
	AcceptsSizes     []string `json:"accepts_sizes" binding:"required,min=1"`
	Location         string   `json:"location" binding:"required"`
	RadiusKm         float64  `json:"radius_km" binding:"required"`
	ExperienceYears  int      `json:"experience_years" binding:"gte=0"`
	HasYard          bool     `json:"has_yard"`
	HasInsurance     bool     `json:"has_insurance"`
	EmergencyContact *string  `json:"emergency_contact"`
}

// UpdateListingRequest applies only the provided fields.
type UpdateListingRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	ServicesOffered  *[]string `json:"services_offered"`
	PricePerHour     *float64  `json:"price_per_hour"`
	PricePerDay      *float64  `json:"price_per_day"`
	PricePerNight    *float64  `json:"price_per_night"`
	MaxDogs          *int      `json:"max_dogs"`
	AcceptsSizes     *[]string `json:"accepts_sizes"`
	Location         *string   `json:"location"`
	RadiusKm         *float64  `json:"radius_km"`
	ExperienceYears  *int      `json:"experience_years"`
	HasYard          *bool     `json:"has_yard"`
	HasInsurance     *bool     `json:"has_insurance"`
	EmergencyContact *string   `json:"emergency_contact"`
	IsActive         *bool     `json:"is_active"`
}

// SearchRequest mirrors the query parameters of the search endpoint.
// Service type and dog size are matched against the listing's enum sets
// in memory; the rest filter at the query level.
type SearchRequest struct {
	Location           *string  `form:"location"`
	RadiusKm           *float64 `form:"radius_km"`
	ServiceType        *string  `form:"service_type"`
	DogSize            *string  `form:"dog_size"`
	MaxPricePerHour    *float64 `form:"max_price_per_hour"`
	HasYard            *bool    `form:"has_yard"`
	HasInsurance       *bool    `form:"has_insurance"`
	MinExperienceYears *int     `form:"min_experience_years"`
}
