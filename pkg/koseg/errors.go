package koseg

import "errors"

var (
	// ErrEngineInit reports that the segmentation engine could not be
	// configured: the dictionary is missing or corrupt, or the configuration is
	// invalid. There is no recovery; the C boundary terminates the process.
	ErrEngineInit = errors.New("koseg: engine initialization failed")

	// ErrNullInput reports a NULL input pointer at the C boundary.
	ErrNullInput = errors.New("koseg: null input")

	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("koseg: input is not valid UTF-8")

	// ErrTokenize reports that the engine failed on otherwise valid text, or
	// produced spans that do not fit the input.
	ErrTokenize = errors.New("koseg: tokenization failed")

	// ErrCGONotEnabled signals a build without cgo, where the C memory layer
	// is unavailable.
	ErrCGONotEnabled = errors.New("koseg: cgo not enabled")
)
