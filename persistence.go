package chainmap

import (
	"fmt"
	"github.com/gostonefire/chainmap/codec"
	"github.com/gostonefire/chainmap/crt"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/conf"
	"github.com/gostonefire/chainmap/internal/element"
	"github.com/gostonefire/chainmap/internal/model"
	"github.com/gostonefire/chainmap/internal/storage"
	"github.com/gostonefire/chainmap/internal/table"
	"go.uber.org/zap"
)

// MarshalBinary - Serializes the hash map as a header followed by every record, where each record is the
// serialized key immediately followed by the serialized value.
func (H *HashMap[K, V]) MarshalBinary() (data []byte, err error) {
	var payloadSize int
	H.table.Range(func(pair *element.Pair[K, V]) bool {
		payloadSize += pair.SerializedSize()
		return true
	})

	header := model.Header{
		Version:                      conf.FormatVersion,
		CollisionResolutionTechnique: crt.SeparateChaining,
		InternalAlgorithm:            H.table.InternalAlgorithm(),
		NumberOfBuckets:              H.table.BucketCount(),
		Records:                      H.table.Len(),
		PayloadSize:                  int64(payloadSize),
	}

	data = make([]byte, conf.HeaderLength+payloadSize)
	_ = copy(data, storage.HeaderToBytes(header))

	cursor := conf.HeaderLength
	var n int
	H.table.Range(func(pair *element.Pair[K, V]) bool {
		n, err = pair.Serialize(data[cursor:])
		if err != nil {
			return false
		}
		cursor += n
		return true
	})
	if err != nil {
		data = nil
		err = fmt.Errorf("error while serializing record: %w", err)
		return
	}

	return
}

// UnmarshalBinary - Replaces the contents of the hash map with records from data produced by MarshalBinary.
// The number of buckets is taken from data. If data was produced with a custom bucket algorithm the hash map
// must use a custom algorithm with the same number of buckets, and vice versa for the internal algorithm.
// On error the hash map is left unchanged.
func (H *HashMap[K, V]) UnmarshalBinary(data []byte) (err error) {
	header, err := storage.BytesToHeader(data)
	if err != nil {
		return
	}

	// Checked before any allocation or slicing, header sizes may be corrupt
	available := int64(len(data) - conf.HeaderLength)
	if header.PayloadSize > available {
		err = codec.NewBufferTooShort(int(header.PayloadSize), int(available))
		return
	}
	payloadEnd := int64(conf.HeaderLength) + header.PayloadSize

	var bucketAlgorithm hashfunc.BucketAlgorithm
	if !H.table.InternalAlgorithm() {
		bucketAlgorithm = H.table.BucketAlgorithm()
	}
	err = checkBucketAlgorithm(header, bucketAlgorithm, H.table.BucketCount())
	if err != nil {
		return
	}

	tbl, err := table.NewTable[*element.Pair[K, V]](header.NumberOfBuckets, bucketAlgorithm)
	if err != nil {
		return
	}

	cursor := int64(conf.HeaderLength)
	var n int
	for i := int64(0); i < header.Records; i++ {
		pair := &element.Pair[K, V]{}
		n, err = pair.Deserialize(data[cursor:payloadEnd])
		if err != nil {
			H.logger.Debug("failed to deserialize record", zap.Int64("record", i), zap.Int64("offset", cursor), zap.Error(err))
			err = fmt.Errorf("error while deserializing record %d: %w", i, err)
			return
		}
		cursor += int64(n)

		if !tbl.Add(pair) {
			err = codec.NewInvalidHeader(fmt.Sprintf("record %d holds a duplicate key", i))
			return
		}
	}

	if cursor != payloadEnd {
		err = codec.NewInvalidHeader(fmt.Sprintf("records use %d bytes but header states %d", cursor-int64(conf.HeaderLength), header.PayloadSize))
		return
	}

	H.table = tbl

	return
}

// Save - Writes the hash map to a file named after name (name-map.bin), truncating any existing file.
//   - name is the name of the hash map and will be used to form the file name, it may include a path
func (H *HashMap[K, V]) Save(name string) (err error) {
	if name == "" {
		err = fmt.Errorf("name can not be empty, it will be used to name physical files")
		return
	}

	data, err := H.MarshalBinary()
	if err != nil {
		return
	}

	fileName := storage.GetMapFileName(name)
	err = storage.WriteFile(fileName, data)
	if err != nil {
		err = fmt.Errorf("error while writing map file: %w", err)
		return
	}

	H.logger.Debug("saved hash map", zap.String("file", fileName), zap.Int64("records", H.table.Len()), zap.Int("bytes", len(data)))

	return
}

// NewFromExistingFile - Loads a hash map previously written by Save. If the file was written from a hash map
// using a custom bucket algorithm, also that same algorithm has to be supplied in mapConf.
//   - name is the name of an existing hash map (including path)
//   - mapConf is a Conf struct, BucketCount is ignored and taken from the file
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal Go Error which should be nil if everything went ok
func NewFromExistingFile[K codec.Key[K], V codec.Value[V]](name string, mapConf Conf) (hashMap *HashMap[K, V], err error) {
	fileName := storage.GetMapFileName(name)
	data, err := storage.ReadFile(fileName)
	if err != nil {
		return
	}

	header, err := storage.BytesToHeader(data)
	if err != nil {
		return
	}
	err = checkBucketAlgorithm(header, mapConf.BucketAlgorithm, header.NumberOfBuckets)
	if err != nil {
		return
	}

	mapConf.BucketCount = header.NumberOfBuckets
	hm, err := NewHashMap[K, V](mapConf)
	if err != nil {
		return
	}

	err = hm.UnmarshalBinary(data)
	if err != nil {
		return
	}

	hm.logger.Debug("loaded hash map", zap.String("file", fileName), zap.Int64("records", hm.Len()), zap.Int64("buckets", hm.BucketCount()))
	hashMap = hm

	return
}

// RemoveFile - Removes the map file for name if it exists
func RemoveFile(name string) error {
	return storage.RemoveFile(storage.GetMapFileName(name))
}

// checkBucketAlgorithm - Checks that the choice of bucket algorithm matches what the serialized data was produced with
func checkBucketAlgorithm(header model.Header, bucketAlgorithm hashfunc.BucketAlgorithm, bucketCount int64) (err error) {
	if header.InternalAlgorithm && bucketAlgorithm != nil {
		err = fmt.Errorf("seems the hash map was saved with the internal bucket algorithm but an external was given")
		return
	}
	if !header.InternalAlgorithm && bucketAlgorithm == nil {
		err = fmt.Errorf("seems the hash map was saved with an external bucket algorithm but no external was given")
		return
	}
	if !header.InternalAlgorithm && header.NumberOfBuckets != bucketCount {
		err = fmt.Errorf("hash map was saved with %d buckets but the external bucket algorithm addresses %d", header.NumberOfBuckets, bucketCount)
		return
	}

	return
}
