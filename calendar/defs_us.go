package calendar

import "time"

// US federal holidays
var (
	USNewYear      = NewFixed("New Year's Day", Public, time.January, 1)
	USMLK          = NewNth("MLK Jr. Day", Public, time.January, time.Monday, 3)
	USPresidents   = NewNth("Presidents' Day", Public, time.February, time.Monday, 3)
	USMemorial     = NewLast("Memorial Day", Public, time.May, time.Monday)
	USJuneteenth   = NewFixed("Juneteenth", Public, time.June, 19)
	USIndependence = NewFixed("Independence Day", Public, time.July, 4)
	USLabor        = NewNth("Labor Day", Public, time.September, time.Monday, 1)
	USColumbus     = NewNth("Columbus Day", Public, time.October, time.Monday, 2)
	USVeterans     = NewFixed("Veterans Day", Public, time.November, 11)
	USThanksgiving = NewNth("Thanksgiving", Public, time.November, time.Thursday, 4)
	USChristmas    = NewFixed("Christmas Day", Public, time.December, 25)
)

var usRules = []Rule{
	USNewYear,
	USMLK,
	USPresidents,
	USMemorial,
	USJuneteenth,
	USIndependence,
	USLabor,
	USColumbus,
	USVeterans,
	USThanksgiving,
	USChristmas,
}
