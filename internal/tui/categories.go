package tui

// Category is one entry of the editor menu, backed by one form
type Category struct {
	ID          string
	Name        string
	Description string
}

var Categories = []Category{
	{ID: "entry", Name: "Entry Points", Description: "Generated module format and default directory"},
	{ID: "run", Name: "Run", Description: "Progress bar and strict exit status"},
	{ID: "logging", Name: "Logging", Description: "Log level and format"},
}

func GetCategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}
