package schema

import "github.com/vitalvas/openschema/ast"

// DateTimeTypeID marks schemas whose decoded value is a point in time.
var DateTimeTypeID = ast.NewSymbol("openschema/DateTime")

var (
	// DateTimeUtcFromSelf is the decoded date/time value.
	DateTimeUtcFromSelf = Declare().
		Annotate(DateTimeTypeID, true).
		Identifier("DateTimeUtcFromSelf")

	// DateTimeUtcFromNumber decodes a number of milliseconds since the epoch.
	DateTimeUtcFromNumber = Transform(
		Number.Description("a number to be decoded into a DateTime.Utc"),
		DateTimeUtcFromSelf,
	).Identifier("DateTimeUtcFromNumber")

	// DateTimeUtcFromString decodes an ISO 8601 string.
	DateTimeUtcFromString = Transform(
		String.Description("a string to be decoded into a DateTime.Utc"),
		DateTimeUtcFromSelf,
	).Identifier("DateTimeUtcFromString")

	// Timestamp is a date/time sent as milliseconds since the epoch.
	Timestamp = Transform(Number, DateTimeUtcFromSelf).
		Annotate(DateTimeTypeID, true).
		Identifier("Timestamp")

	// DateTime accepts every supported date/time encoding.
	DateTime = Union(DateTimeUtcFromNumber, DateTimeUtcFromString, DateTimeUtcFromSelf).
		Title("DateTime").
		Description("A date and time value, accepts multiple formats: Unix timestamp (number), ISO string, or Date object")
)
