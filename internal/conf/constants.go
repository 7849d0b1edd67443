package conf

// MagicNumber - Identifies serialized chained hash map data
const MagicNumber uint32 = 0x43484D50

// FormatVersion - Version of the serialized layout
const FormatVersion uint8 = 1

// HeaderLength - Length of the header preceding serialized elements
const HeaderLength int = 64

// MagicNumberOffset - Header offset to the magic number - 4 bytes
const MagicNumberOffset int = 0

// VersionOffset - Header offset to the format version - 1 byte
const VersionOffset int = 4

// CollisionResolutionTechniqueOffset - Header offset to which collision resolution technique is used - 1 byte
const CollisionResolutionTechniqueOffset int = 5

// BucketAlgorithmOffset - Header offset to whether using internal (1) or external (0) bucket algorithm - 1 byte
const BucketAlgorithmOffset int = 6

// NumberOfBucketsOffset - Header offset to number of buckets - 8 bytes
const NumberOfBucketsOffset int = 8

// RecordsOffset - Header offset to number of stored records - 8 bytes
const RecordsOffset int = 16

// PayloadSizeOffset - Header offset to the number of element bytes following the header - 8 bytes
const PayloadSizeOffset int = 24

// MaxNumberOfBuckets - Highest number of buckets a hash map can be created with or loaded with - fits 4 bytes
const MaxNumberOfBuckets int64 = 1<<32 - 1
