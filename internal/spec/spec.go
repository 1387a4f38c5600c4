package spec

// Carrier constants
const (
	DEFAULT_BIT_WIDTH = 2 // Low bits used per channel unless configured
	CHANNELS          = 3 // RGB channels, alpha is never touched
	BITS_PER_BYTE     = 8 // Standard byte size
)

// Frame constants
const (
	FRAME_HEADER_SIZE = 8          // nameLength(4) + fileLength(4), big-endian
	DECODED_PREFIX    = "decoded_" // Prefix for files written by the decoder
)

// String mode terminates on the first byte outside this range
const (
	PRINTABLE_MIN = 32
	PRINTABLE_MAX = 126
)

// VALID_BIT_WIDTHS lists every supported bit width
var VALID_BIT_WIDTHS = [...]int{1, 2, 4, 8}
