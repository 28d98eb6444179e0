package qrcode

import (
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

// BookingPassPrefix 预约凭证二维码内容前缀，扫码端据此解析预约 ID
const BookingPassPrefix = "campus-connect://booking/"

// BookingPassContent 生成预约凭证二维码的文本内容
func BookingPassContent(bookingID string) string {
	return BookingPassPrefix + bookingID
}

// PNG 将内容编码为指定边长的 PNG 二维码
func PNG(content string, size int) ([]byte, error) {
	png, err := goqrcode.Encode(content, goqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("生成二维码失败: %w", err)
	}
	return png, nil
}
