// Package words spells unsigned integers out in English ("123" becomes
// "one hundred twenty-three") and parses the decimal text users type into
// values bounded by a configurable integer width.
//
// Both operations are pure functions; the package holds no state beyond its
// lookup tables.
package words
