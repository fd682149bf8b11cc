package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(eateryID int) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	link := fmt.Sprintf("%s/eatery/%d/review", strings.TrimRight(g.BaseURL, "/"), eateryID)
	return qrcode.Encode(link, qrcode.Medium, size)
}
