package handlers

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"
)

// Качество перекодирования совпадает с клиентским (0.8).
const jpegQuality = 80

// reencodeJPEG декодирует входное изображение и пережимает его в JPEG.
// Уже-JPEG тоже проходит через пережатие: на выходе хранилище держит
// один формат с предсказуемым размером.
func reencodeJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func checkPhotoSize(data []byte, maxMB int) error {
	limit := int64(maxMB) * 1024 * 1024
	if int64(len(data)) > limit {
		return fmt.Errorf("photo exceeds %d MB limit", maxMB)
	}
	return nil
}
