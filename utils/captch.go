package utils

import (
	"bytes"
	"fmt"
	"math/rand"

	svg "github.com/ajstarks/svgo"
)

const captchaChars = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// generateCaptchaCode 生成4位验证码，去掉易混淆字符
func generateCaptchaCode() string {
	code := make([]byte, 4)
	for i := range code {
		code[i] = captchaChars[rand.Intn(len(captchaChars))]
	}
	return string(code)
}

// captchaColor 随机浅色，避免和白底冲突太弱或太深
func captchaColor() string {
	return fmt.Sprintf("#%02x%02x%02x",
		rand.Intn(128)+64,
		rand.Intn(128)+64,
		rand.Intn(128)+64)
}

// GenerateSVG 生成SVG验证码图片，返回图片字节和明文验证码
func GenerateSVG(width, height int) ([]byte, string) {
	code := generateCaptchaCode()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	// 干扰线
	for i := 0; i < 5; i++ {
		canvas.Line(rand.Intn(width), rand.Intn(height), rand.Intn(width), rand.Intn(height),
			fmt.Sprintf("stroke:%s;stroke-width:1", captchaColor()))
	}

	// 干扰点
	for i := 0; i < 25; i++ {
		canvas.Circle(rand.Intn(width), rand.Intn(height), 1, fmt.Sprintf("fill:%s", captchaColor()))
	}

	charWidth := width / (len(code) + 1)
	for i, ch := range code {
		x := charWidth * (i + 1)
		y := height/2 + rand.Intn(8) - 4
		canvas.Text(x, y, string(ch),
			fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s", height/2, captchaColor()))
	}

	canvas.End()
	return buf.Bytes(), code
}
