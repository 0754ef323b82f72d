package models

// UserProfile holds the birth and astrology attributes of the app user
type UserProfile struct {
	Name         string `json:"name"`
	BirthDate    string `json:"birth_date"`
	BirthTime    string `json:"birth_time"`
	BirthPlace   string `json:"birth_place"`
	SunSign      string `json:"sun_sign"`
	MoonSign     string `json:"moon_sign"`
	Ascendant    string `json:"ascendant"`
	CurrentDasha string `json:"current_dasha"`
}

// ProfileUpdate is a partial profile; nil fields are left untouched.
type ProfileUpdate struct {
	Name         *string `json:"name,omitempty"`
	BirthDate    *string `json:"birth_date,omitempty"`
	BirthTime    *string `json:"birth_time,omitempty"`
	BirthPlace   *string `json:"birth_place,omitempty"`
	SunSign      *string `json:"sun_sign,omitempty"`
	MoonSign     *string `json:"moon_sign,omitempty"`
	Ascendant    *string `json:"ascendant,omitempty"`
	CurrentDasha *string `json:"current_dasha,omitempty"`
}

// Merge returns a new profile with the non-nil fields of u applied.
func (p UserProfile) Merge(u ProfileUpdate) UserProfile {
	out := p
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.Name, u.Name)
	set(&out.BirthDate, u.BirthDate)
	set(&out.BirthTime, u.BirthTime)
	set(&out.BirthPlace, u.BirthPlace)
	set(&out.SunSign, u.SunSign)
	set(&out.MoonSign, u.MoonSign)
	set(&out.Ascendant, u.Ascendant)
	set(&out.CurrentDasha, u.CurrentDasha)
	return out
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
