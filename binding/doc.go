// Package binding derives request parameter metadata from tagged structs and
// binds incoming requests onto them.
//
// A field participates when it carries a `query` or `path` tag naming the
// parameter. Optional tags refine the metadata:
//
//	type ForecastParams struct {
//	    Days int `query:"days" description:"Number of days to forecast" default:"5" minimum:"1" maximum:"14"`
//	}
//
// Path parameters are always required.
package binding
