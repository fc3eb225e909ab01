package qoi

import "errors"

// Error kinds mirror the reference implementation's qoi_error enum
// (original_source/qoi.c), re-architected per the design notes from a
// process-wide register read after the fact into sentinel values returned
// directly from the failing call.
var (
	// ErrPermissions indicates the file adapter could not open or stat a file.
	ErrPermissions = errors.New("qoi: insufficient permissions, or file does not exist")

	// ErrMemory indicates allocation of a raster or intermediate buffer failed.
	ErrMemory = errors.New("qoi: insufficient memory")

	// ErrFileContent indicates the byte stream ended before the declared
	// header or pixel data could be read in full.
	ErrFileContent = errors.New("qoi: file could not be read in full")

	// ErrNotAQoiFile indicates the 4-byte magic did not match "qoif".
	ErrNotAQoiFile = errors.New("qoi: not a valid qoi file")

	// ErrDiskSpace indicates a byte sink refused a write.
	ErrDiskSpace = errors.New("qoi: insufficient disk space to write file")

	// ErrMalformedOpcode is reserved for a tag byte matching no known
	// pattern. Unreachable under the current 256-value tag table (every
	// byte value is covered by RGB, RGBA, INDEX, DIFF, LUMA, or RUN) but
	// kept for defensive callers and any future opcode-set extension.
	ErrMalformedOpcode = errors.New("qoi: malformed opcode")

	// ErrInvalidChannels indicates a channel count outside {3, 4}.
	ErrInvalidChannels = errors.New("qoi: channels must be 3 or 4")

	// ErrInvalidColorspace indicates a colorspace tag outside {0, 1}.
	ErrInvalidColorspace = errors.New("qoi: colorspace must be 0 or 1")

	// ErrRasterSize indicates a raster whose length doesn't match
	// width * height * channels.
	ErrRasterSize = errors.New("qoi: raster size does not match width * height * channels")
)
