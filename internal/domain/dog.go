package domain

import "time"

type DogSize string

const (
	SizeSmall      DogSize = "small"
	SizeMedium     DogSize = "medium"
	SizeLarge      DogSize = "large"
	SizeExtraLarge DogSize = "extra_large"
)

func (s DogSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

type Temperament string

const (
	TemperamentCalm       Temperament = "calm"
	TemperamentPlayful    Temperament = "playful"
	TemperamentEnergetic  Temperament = "energetic"
	TemperamentAggressive Temperament = "aggressive"
	TemperamentAnxious    Temperament = "anxious"
	TemperamentFriendly   Temperament = "friendly"
)

func (t Temperament) Valid() bool {
	switch t {
	case TemperamentCalm, TemperamentPlayful, TemperamentEnergetic,
		TemperamentAggressive, TemperamentAnxious, TemperamentFriendly:
		return true
	}
	return false
}

type Dog struct {
	ID                  int64         `json:"id"`
	OwnerID             int64         `json:"owner_id"`
	Name                string        `json:"name"`
	Breed               *string       `json:"breed"`
	Age                 int           `json:"age"`
	Size                DogSize       `json:"size"`
	Weight              *float64      `json:"weight"`
	Temperament         []Temperament `json:"temperament"`
	MedicalNotes        *string       `json:"medical_notes"`
	SpecialInstructions *string       `json:"special_instructions"`
	ProfileImageURL     *string       `json:"profile_image_url"`
	IsActive            bool          `json:"is_active"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
