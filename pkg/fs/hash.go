package fs

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
)

const (
	hashSize = 16 * 1024
)

// Hash returns the SHA1 hash of a file as string.
func Hash(fileName string) string {
	if bytes, err := readHashBytes(fileName); err != nil {
		return ""
	} else {
		return Checksum(bytes)
	}
}

// Checksum returns the SHA1 hash of the given bytes as string.
func Checksum(data []byte) string {
	hash := sha1.New()

	if _, err := hash.Write(data); err != nil {
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))
}

func readHashBytes(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, err
	}

	// Hash small files in full, sample large ones at fixed offsets.
	if fileInfo.Size() <= hashSize {
		return os.ReadFile(filePath)
	}

	firstBytes := make([]byte, hashSize/2)
	if _, e := file.ReadAt(firstBytes, 0); e != nil {
		return nil, fmt.Errorf("couldn't read first few bytes: %+v", e)
	}
	middleBytes := make([]byte, hashSize/4)
	if _, e := file.ReadAt(middleBytes, fileInfo.Size()/2); e != nil {
		return nil, fmt.Errorf("couldn't read middle bytes: %+v", e)
	}
	lastBytes := make([]byte, hashSize/4)
	if _, e := file.ReadAt(lastBytes, fileInfo.Size()-hashSize/4); e != nil {
		return nil, fmt.Errorf("couldn't read end bytes: %+v", e)
	}
	bytes := append(append(firstBytes, middleBytes...), lastBytes...)
	return bytes, nil
}
