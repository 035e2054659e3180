package calendar

import "time"

// Indian holidays. Holi and Diwali follow the lunisolar calendar and move
// every year; they are pinned to fixed dates here.
var (
	INRepublic        = NewFixed("Republic Day", Public, time.January, 26)
	INHoli            = NewFixed("Holi", Public, time.March, 14)
	INIndependence    = NewFixed("Independence Day", Public, time.August, 15)
	INGandhiJayanti   = NewFixed("Gandhi Jayanti", Public, time.October, 2)
	INDiwali          = NewFixed("Diwali", Public, time.October, 20)
	INChristmas       = NewFixed("Christmas", Public, time.December, 25)
	INMakarSankranti  = NewFixed("Makar Sankranti", Observance, time.January, 14)
	INAmbedkarJayanti = NewFixed("Ambedkar Jayanti", Public, time.April, 14)
	INMayDay          = NewFixed("May Day", Observance, time.May, 1)
)

var inRules = []Rule{
	INRepublic,
	INHoli,
	INIndependence,
	INGandhiJayanti,
	INDiwali,
	INChristmas,
	INMakarSankranti,
	INAmbedkarJayanti,
	INMayDay,
}

var builtin = map[Region][]Rule{
	US: usRules,
	IN: inRules,
}
