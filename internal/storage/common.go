package storage

import (
	"encoding/binary"
	"fmt"
	"github.com/gostonefire/chainmap/codec"
	"github.com/gostonefire/chainmap/crt"
	"github.com/gostonefire/chainmap/internal/conf"
	"github.com/gostonefire/chainmap/internal/model"
	"go.uber.org/multierr"
	"io"
	"os"
)

// GetMapFileName - Return the map file name given the hash map name
func GetMapFileName(name string) (fileName string) {
	return fmt.Sprintf("%s-map.bin", name)
}

// BytesToHeader - Converts the start of buf to a Header struct, validating magic number, version and
// collision resolution technique.
func BytesToHeader(buf []byte) (header model.Header, err error) {
	if len(buf) < conf.HeaderLength {
		err = codec.NewBufferTooShort(conf.HeaderLength, len(buf))
		return
	}

	if magic := binary.LittleEndian.Uint32(buf[conf.MagicNumberOffset:]); magic != conf.MagicNumber {
		err = codec.NewInvalidHeader(fmt.Sprintf("wrong magic number %#x", magic))
		return
	}

	header = model.Header{
		Version:                      buf[conf.VersionOffset],
		CollisionResolutionTechnique: int(buf[conf.CollisionResolutionTechniqueOffset]),
		InternalAlgorithm:            buf[conf.BucketAlgorithmOffset] == 1,
		NumberOfBuckets:              int64(binary.LittleEndian.Uint64(buf[conf.NumberOfBucketsOffset:])),
		Records:                      int64(binary.LittleEndian.Uint64(buf[conf.RecordsOffset:])),
		PayloadSize:                  int64(binary.LittleEndian.Uint64(buf[conf.PayloadSizeOffset:])),
	}

	if header.Version != conf.FormatVersion {
		err = codec.NewInvalidHeader(fmt.Sprintf("unsupported format version %d", header.Version))
		return
	}
	if header.CollisionResolutionTechnique != crt.SeparateChaining {
		err = codec.NewInvalidHeader(fmt.Sprintf("unsupported collision resolution technique %d", header.CollisionResolutionTechnique))
		return
	}
	if header.NumberOfBuckets <= 0 || header.Records < 0 || header.PayloadSize < 0 {
		err = codec.NewInvalidHeader("negative or zero sizes in header")
		return
	}
	if header.NumberOfBuckets > conf.MaxNumberOfBuckets {
		err = codec.NewInvalidHeader(fmt.Sprintf("number of buckets %d exceeds max %d", header.NumberOfBuckets, conf.MaxNumberOfBuckets))
		return
	}

	return
}

// HeaderToBytes - Converts a Header struct to a slice of bytes
func HeaderToBytes(header model.Header) (buf []byte) {
	// Create byte buffer
	buf = make([]byte, conf.HeaderLength)

	binary.LittleEndian.PutUint32(buf[conf.MagicNumberOffset:], conf.MagicNumber)
	buf[conf.VersionOffset] = header.Version
	buf[conf.CollisionResolutionTechniqueOffset] = uint8(header.CollisionResolutionTechnique)
	if header.InternalAlgorithm {
		buf[conf.BucketAlgorithmOffset] = 1
	}

	binary.LittleEndian.PutUint64(buf[conf.NumberOfBucketsOffset:], uint64(header.NumberOfBuckets))
	binary.LittleEndian.PutUint64(buf[conf.RecordsOffset:], uint64(header.Records))
	binary.LittleEndian.PutUint64(buf[conf.PayloadSizeOffset:], uint64(header.PayloadSize))

	return
}

// WriteFile - Creates (or truncates) fileName and writes data to it
func WriteFile(fileName string, data []byte) (err error) {
	file, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return
	}
	defer func(file *os.File) { err = multierr.Append(err, file.Close()) }(file)

	_, err = file.Write(data)
	if err != nil {
		return
	}

	err = file.Sync()

	return
}

// ReadFile - Reads the entire contents of fileName, the header is validated before the rest is read.
func ReadFile(fileName string) (data []byte, err error) {
	file, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return
	}
	defer func(file *os.File) { err = multierr.Append(err, file.Close()) }(file)

	buf := make([]byte, conf.HeaderLength)
	_, err = io.ReadFull(file, buf)
	if err != nil {
		err = fmt.Errorf("error while reading header from %s: %w", fileName, err)
		return
	}

	header, err := BytesToHeader(buf)
	if err != nil {
		return
	}

	stat, err := file.Stat()
	if err != nil {
		return
	}
	available := stat.Size() - int64(conf.HeaderLength)
	if header.PayloadSize > available {
		err = codec.NewBufferTooShort(int(header.PayloadSize), int(available))
		err = fmt.Errorf("error while reading elements from %s: %w", fileName, err)
		return
	}

	data = make([]byte, int64(conf.HeaderLength)+header.PayloadSize)
	_ = copy(data, buf)
	_, err = io.ReadFull(file, data[conf.HeaderLength:])
	if err != nil {
		data = nil
		err = fmt.Errorf("error while reading elements from %s: %w", fileName, err)
		return
	}

	return
}

// RemoveFile - Removes fileName if it exists and is not a directory
func RemoveFile(fileName string) (err error) {
	// Only try to remove if exists, and are not by accident directories (could happen when testing things out)
	if stat, ok := os.Stat(fileName); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(fileName)
			if err != nil {
				err = fmt.Errorf("error while removing map file: %w", err)
				return
			}
		}
	}

	return
}
