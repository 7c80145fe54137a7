package utility

import "strconv"

// FormatUnixMilli format unix millis thành chuỗi thập phân
func FormatUnixMilli(ms int64) string {
	return strconv.FormatInt(ms, 10)
}
