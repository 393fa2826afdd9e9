package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyLength 令牌固定长度（40 个十六进制字符）
const KeyLength = 40

// NewKey 生成一个不透明登录令牌
// 使用加密安全随机源，20 字节随机数编码为 40 位十六进制字符串
func NewKey() (string, error) {
	buf := make([]byte, KeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成令牌失败: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
