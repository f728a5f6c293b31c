package catalog

import (
	"github.com/mkale/transitmate/internal/pkg/models"
)

// Modes is the fixed set of transport modes offered in the app
var Modes = []models.TransportMode{
	{ID: "bus", Name: "Bus", Icon: "bus"},
	{ID: "metro", Name: "Metro", Icon: "train"},
	{ID: "auto", Name: "Auto", Icon: "auto"},
	{ID: "taxi", Name: "Taxi", Icon: "taxi"},
}

// RouteOptions is the fixed set of pre-computed trip options. Fares are in
// INR.
var RouteOptions = []models.RouteOption{
	{ID: "r1", Modes: []string{"Bus", "Metro"}, Duration: "25 mins", Fare: 3735, EcoScore: 92, Label: "Fastest"},
	{ID: "r2", Modes: []string{"Bus"}, Duration: "40 mins", Fare: 1245, EcoScore: 85, Label: "Cheapest"},
	{ID: "r3", Modes: []string{"Metro"}, Duration: "32 mins", Fare: 2490, EcoScore: 98, Label: "Eco-friendly"},
}

// RouteOptionByID returns the option with the given ID, nil when unknown
func RouteOptionByID(id string) *models.RouteOption {
	for i := range RouteOptions {
		if RouteOptions[i].ID == id {
			return &RouteOptions[i]
		}
	}
	return nil
}
