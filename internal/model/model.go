package model

// Header - Represents the header written ahead of serialized hash map elements
type Header struct {
	Version                      uint8
	CollisionResolutionTechnique int
	InternalAlgorithm            bool
	NumberOfBuckets              int64
	Records                      int64
	PayloadSize                  int64
}
