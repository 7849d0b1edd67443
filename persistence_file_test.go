//go:build integration

package chainmap

import (
	"fmt"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/keys"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestHashMap_Save(t *testing.T) {
	t.Run("saves and loads hash map", func(t *testing.T) {
		// Prepare
		name := filepath.Join(t.TempDir(), "test")
		hm, err := NewHashMap[keys.Bytes, keys.Bytes](Conf{BucketCount: 1000})
		assert.NoError(t, err, "creates hash map")

		records := make(map[string][]byte)
		for i := 0; i < 1000; i++ {
			key := make([]byte, 16)
			rand.Read(key)
			value := make([]byte, 10)
			rand.Read(value)
			records[string(key)] = value
			hm.Put(key, value)
		}

		// Execute
		err = hm.Save(name)
		assert.NoError(t, err, "saves hash map")
		loaded, err := NewFromExistingFile[keys.Bytes, keys.Bytes](name, Conf{})

		// Check
		assert.NoError(t, err, "loads hash map")
		assert.Equal(t, hm.Len(), loaded.Len(), "number of records preserved")
		assert.Equal(t, hm.BucketCount(), loaded.BucketCount(), "number of buckets preserved")
		for k, v := range records {
			value, ok := loaded.Get(keys.Bytes(k))
			assert.True(t, ok, "record found")
			assert.Equal(t, keys.Bytes(v), value, "value preserved")
		}

		// Clean up
		err = RemoveFile(name)
		assert.NoError(t, err, "removes file")
		_, err = os.Stat(fmt.Sprintf("%s-map.bin", name))
		assert.True(t, os.IsNotExist(err), "map file removed")
	})

	t.Run("error on empty name", func(t *testing.T) {
		// Prepare
		hm := newStringMapForFiles(t)

		// Execute
		err := hm.Save("")

		// Check
		assert.Error(t, err, "empty name rejected")
	})
}

func TestNewFromExistingFile(t *testing.T) {
	t.Run("error when opening a non-existing file", func(t *testing.T) {
		// Execute
		_, err := NewFromExistingFile[keys.String, keys.String](filepath.Join(t.TempDir(), "missing"), Conf{})

		// Check
		assert.True(t, os.IsNotExist(err), "file does not exist")
	})

	t.Run("requires the custom algorithm used when saving", func(t *testing.T) {
		// Prepare
		name := filepath.Join(t.TempDir(), "test")
		hm, err := NewHashMap[keys.String, keys.String](Conf{BucketCount: 10, BucketAlgorithm: hashfunc.NewMaskAlgorithm(10)})
		assert.NoError(t, err, "creates hash map")
		hm.Put("a", "1")
		assert.NoError(t, hm.Save(name), "saves hash map")

		// Execute
		_, errNoAlg := NewFromExistingFile[keys.String, keys.String](name, Conf{})
		loaded, err := NewFromExistingFile[keys.String, keys.String](name, Conf{BucketAlgorithm: hashfunc.NewMaskAlgorithm(1)})

		// Check
		assert.Error(t, errNoAlg, "custom algorithm missing")
		assert.NoError(t, err, "loads with custom algorithm")
		assert.Equal(t, int64(16), loaded.BucketCount(), "bucket count preserved")
		value, ok := loaded.Get("a")
		assert.True(t, ok, "record found")
		assert.Equal(t, keys.String("1"), value, "value preserved")
	})
}

func newStringMapForFiles(t *testing.T) *HashMap[keys.String, keys.String] {
	hm, err := NewHashMap[keys.String, keys.String](Conf{BucketCount: 4})
	assert.NoError(t, err, "creates hash map")
	return hm
}
