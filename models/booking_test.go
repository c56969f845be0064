package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateKeyCollapsesTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 1, 22, 45, 0, 0, time.UTC)

	require.Equal(t, "2024-06-01", DateKey(morning))
	require.Equal(t, DateKey(morning), DateKey(evening))
}

func TestNormalizeDate(t *testing.T) {
	day, err := NormalizeDate("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", day)

	_, err = NormalizeDate("01/06/2024")
	require.Error(t, err)
	_, err = NormalizeDate("2024-13-01")
	require.Error(t, err)
}

func TestServicePrices(t *testing.T) {
	cases := map[ServiceType]float64{
		ServiceHaircut:      25,
		ServiceHairColoring: 60,
		ServiceHairWashing:  15,
		ServiceBeardTrim:    20,
		ServiceScalpMassage: 30,
	}
	for svc, want := range cases {
		price, err := svc.Price()
		require.NoError(t, err)
		require.Equal(t, want, price)
	}

	_, err := ServiceType("manicure").Price()
	require.Error(t, err)
	require.False(t, ServiceType("manicure").Valid())
}

func TestAllServicesStableOrder(t *testing.T) {
	services := AllServices()
	require.Len(t, services, 5)
	require.Equal(t, ServiceHaircut, services[0].ID)
	require.Equal(t, "Hair cut", services[0].Label)
	require.Equal(t, float64(25), services[0].Price)
}
