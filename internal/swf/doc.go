// Package swf holds the legacy binary event-flag table used by clip action
// records in SWF files.
//
// The bit values are defined by the SWF file format and are contractual:
// CLIPEVENTFLAGS is a UI16 in SWF 5 and a UI32 from SWF 6 onward, stored
// little-endian with the first-listed event in the most significant bit of
// each byte. ClipEventFlag mirrors that layout so a decoded value can be
// compared directly against the constants below.
package swf
