// Package stego hides byte payloads in the low bits of packed ARGB pixels.
//
// A Codec is bound to a PixelBuffer and a bit width (1, 2, 4 or 8 low bits per
// color channel). Payload bits are written most-significant group first, into
// channel 2 (red), then 1 (green), then 0 (blue), before moving to the next
// pixel. The top byte (alpha) is never modified.
//
// Three payload modes share the same bit layout:
//
//	raw     - Encode/Decode, decode always returns the full capacity
//	string  - EncodeString/DecodeString, terminated by the first byte outside [32,126]
//	file    - EncodeFile/DecodeFile, framed as
//	          nameLength(u32 be) | fileLength(u32 be) | name | content
//
// Capacity in bytes is floor(pixels * bitWidth * 3 / 8).
package stego
