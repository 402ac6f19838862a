package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

var randSource = rand.NewSource(time.Now().UnixNano())
var randGenerator = rand.New(randSource)

func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[randGenerator.Intn(len(charset))]
	}
	return string(b)
}

// GenerateFileName builds a collision-safe object name from an uploaded
// file: unix millis, a random suffix, and the original extension.
func GenerateFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), GenerateRandomString(9), ext)
}
