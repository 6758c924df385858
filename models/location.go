package models

// Location is one of the studio's two fixed branches. The pair is compiled in;
// per-location scheduling settings live in LocationSetting.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Locations = []Location{
	{ID: "tainan", Name: "Tainan Studio"},
	{ID: "kaohsiung", Name: "Kaohsiung Studio"},
}

// LocationByID returns the matching branch, or false when the id is unknown.
func LocationByID(id string) (Location, bool) {
	for _, l := range Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}
