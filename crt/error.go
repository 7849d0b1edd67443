package crt

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// BucketOutOfRange - Custom error to inform that a bucket algorithm produced a bucket number outside the table
type BucketOutOfRange struct {
	msg string
}

// NewBucketOutOfRange - Returns a BucketOutOfRange error stating the offending bucket number
func NewBucketOutOfRange(bucketNo, numberOfBuckets int64) BucketOutOfRange {
	return BucketOutOfRange{msg: fmt.Sprintf("bucket number %d from bucket algorithm is outside permitted range [0, %d)", bucketNo, numberOfBuckets)}
}

// Error - Used to notify that a bucket number is out of range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number outside permitted range"
	}
	return B.msg
}
