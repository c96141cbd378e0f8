package view

const (
	SearchParamLocation     = "location"
	SearchParamCategory     = "category"
	SearchParamPropertyType = "property_type"
)

type (
	SearchWidget struct {
		CanBeInvisible bool
		Selects        []SearchSelect
	}

	SearchSelect struct {
		Name    string
		Label   string
		Options []SelectOption
	}

	SelectOption struct {
		Value    string
		Label    string
		Selected bool
	}
)

var searchSelects = []SearchSelect{
	{
		Name:  SearchParamLocation,
		Label: "Location",
		Options: []SelectOption{
			{Value: "malaybalay", Label: "Malaybalay City"},
			{Value: "valencia", Label: "Valencia City"},
			{Value: "manolo-fortich", Label: "Manolo Fortich"},
			{Value: "maramag", Label: "Maramag"},
		},
	},
	{
		Name:  SearchParamCategory,
		Label: "Category",
		Options: []SelectOption{
			{Value: "sale", Label: "For Sale"},
			{Value: "rent", Label: "For Rent"},
		},
	},
	{
		Name:  SearchParamPropertyType,
		Label: "Property Type",
		Options: []SelectOption{
			{Value: "house-and-lot", Label: "House and Lot"},
			{Value: "lot", Label: "Lot"},
			{Value: "condominium", Label: "Condominium"},
			{Value: "commercial", Label: "Commercial"},
		},
	},
}

// NewSearchWidget marks the options found in selected, keyed by select name, as chosen.
func NewSearchWidget(canBeInvisible bool, selected map[string]string) SearchWidget {
	selects := make([]SearchSelect, 0, len(searchSelects))
	for _, s := range searchSelects {
		options := make([]SelectOption, 0, len(s.Options))
		for _, option := range s.Options {
			option.Selected = selected[s.Name] == option.Value
			options = append(options, option)
		}

		s.Options = options
		selects = append(selects, s)
	}

	return SearchWidget{
		CanBeInvisible: canBeInvisible,
		Selects:        selects,
	}
}
