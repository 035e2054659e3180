// Package calendar computes regional holiday calendars.
//
// A region owns a list of rules. Each rule pins a holiday to a fixed
// month and day, to the nth weekday of a month (3rd Monday of January)
// or to the last weekday of a month (last Monday of May). Build resolves
// the rules of a region for a year into a date-ordered list of holidays.
// Everything here is a pure function of its inputs; the current date is
// always passed in by the caller.
package calendar
