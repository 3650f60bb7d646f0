package court

// DefaultCatalog returns the fixed set of courts the service opens with.
// There is no court administration surface; this is the whole inventory.
func DefaultCatalog() []*Court {
	courts := []*Court{
		mustCourt("court-1", "Center Court", TypeIndoor, 2500,
			"Main covered court with LED lighting and air conditioning"),
		mustCourt("court-2", "North Court", TypeIndoor, 2000,
			"Covered court with excellent ventilation"),
		mustCourt("court-3", "South Court", TypeOutdoor, 1800,
			"Open-air court with a panoramic view"),
		mustCourt("court-4", "East Court", TypeOutdoor, 1800,
			"Outdoor court with latest-generation artificial turf"),
	}
	return courts
}

func mustCourt(id, name string, courtType Type, rateCents int64, description string) *Court {
	c, err := NewCourt(id, name, courtType, StatusAvailable, rateCents, description)
	if err != nil {
		panic(err)
	}
	return c
}
