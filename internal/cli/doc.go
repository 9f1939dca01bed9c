// Package cli implements the groupie command line interface.
//
// Every subcommand maps to one page of the site and renders its view model
// either as styled text or as indented JSON:
//
//	groupie artists --name queen
//	groupie artist 1 --timeline
//	groupie dates --year 2024 --format json
//	groupie export-ics 1 --out ./calendars
//
// Pages that would redirect to the not-found page exit with code 2; every
// other failure exits with code 1.
package cli
