package dog

type CreateDogRequest struct {
	OwnerID             int64    `json:"owner_id" binding:"required"`
	Name                string   `json:"name" binding:"required"`
	Breed               *string  `json:"breed"`
	Age                 int      `json:"age" binding:"gte=0"`
	Size                string   `json:"size" binding:"required"`
	Weight              *float64 `json:"weight"`
	Temperament         []string `json:"temperament"`
	MedicalNotes        *string  `json:"medical_notes"`
	SpecialInstructions *string  `json:"special_instructions"`
	ProfileImageURL     *string  `json:"profile_image_url"`
}

// UpdateDogRequest applies only the provided fields.
type UpdateDogRequest struct {
	Name                *string   `json:"name"`
	Breed               *string   `json:"breed"`
	Age                 *int      `json:"age"`
	Size                *string   `json:"size"`
	Weight              *float64  `json:"weight"`
	Temperament         *[]string `json:"temperament"`
	MedicalNotes        *string   `json:"medical_notes"`
	SpecialInstructions *string   `json:"special_instructions"`
	ProfileImageURL     *string   `json:"profile_image_url"`
	IsActive            *bool     `json:"is_active"`
}
