package models

import "fmt"

// ServiceType identifies one of the salon's offered services.
type ServiceType string

const (
	ServiceHaircut      ServiceType = "haircut"
	ServiceHairColoring ServiceType = "haircoloring"
	ServiceHairWashing  ServiceType = "hairwashing"
	ServiceBeardTrim    ServiceType = "beardtrim"
	ServiceScalpMassage ServiceType = "scalpmassage"
)

// servicePrices maps every offered service to its fixed price. The set is
// closed; services are not created at runtime.
var servicePrices = map[ServiceType]float64{
	ServiceHaircut:      25,
	ServiceHairColoring: 60,
	ServiceHairWashing:  15,
	ServiceBeardTrim:    20,
	ServiceScalpMassage: 30,
}

// serviceLabels are the human-readable names shown to customers.
var serviceLabels = map[ServiceType]string{
	ServiceHaircut:      "Hair cut",
	ServiceHairColoring: "Hair coloring",
	ServiceHairWashing:  "Hair washing",
	ServiceBeardTrim:    "Beard trim",
	ServiceScalpMassage: "Scalp massage",
}

// Valid reports whether s names an offered service.
func (s ServiceType) Valid() bool {
	_, ok := servicePrices[s]
	return ok
}

// Price returns the fixed price for the service.
func (s ServiceType) Price() (float64, error) {
	price, ok := servicePrices[s]
	if !ok {
		return 0, fmt.Errorf("unknown service %q", string(s))
	}
	return price, nil
}

// Label returns the display name for the service.
func (s ServiceType) Label() string {
	return serviceLabels[s]
}

// ServiceInfo is the catalog entry returned by the services endpoint.
type ServiceInfo struct {
	ID    ServiceType `json:"id"`
	Label string      `json:"label"`
	Price float64     `json:"price"`
}

// AllServices returns the full catalog in a stable order.
func AllServices() []ServiceInfo {
	order := []ServiceType{
		ServiceHaircut,
		ServiceHairColoring,
		ServiceHairWashing,
		ServiceBeardTrim,
		ServiceScalpMassage,
	}
	out := make([]ServiceInfo, 0, len(order))
	for _, s := range order {
		out = append(out, ServiceInfo{ID: s, Label: s.Label(), Price: servicePrices[s]})
	}
	return out
}
