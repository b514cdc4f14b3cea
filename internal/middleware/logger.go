package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Logger configuration
type LoggerConfig struct {
	EnableColors    bool
	LogRequestBody  bool
	LogResponseBody bool
	MaxBodySize     int64 // Max body size to log (in bytes)
	SkipPaths       []string
}

// Default configuration - more conservative
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors:    true,
		LogRequestBody:  true,
		LogResponseBody: false, // Only for errors
		MaxBodySize:     2048,  // 2KB limit
		SkipPaths:       []string{"/health", "/swagger"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		// Skip logging for certain paths
		for _, skipPath := range config.SkipPaths {
			if strings.HasPrefix(path, skipPath) {
				c.Next()
				return
			}
		}

		method := c.Request.Method
		ip := c.ClientIP()
		contentType := c.GetHeader("Content-Type")
		queryParams := c.Request.URL.RawQuery

		// Read and restore request body with size limits
		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[Request body too large to log]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = sanitizeBody(string(bodyBytes), contentType)
				}
			}
		}

		logIncomingRequest(config, method, path, ip, queryParams, requestBody)

		writer := &limitedResponseWriter{
			ResponseWriter: c.Writer,
			maxSize:        config.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		latency := time.Since(start)
		status := writer.Status()

		var responseBody string
		if writer.body.Len() > 0 {
			if config.LogResponseBody || status >= 400 {
				responseBody = sanitizeResponseBody(writer.body.String())
			}
		}

		logOutgoingResponse(config, method, path, status, latency, responseBody)
	}
}

// Size-limited response writer - prevents memory issues
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)

	if w.size+int64(len(b)) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)

	return n, err
}

func logIncomingRequest(config LoggerConfig, method, path, ip, query, body string) {
	var methodColor, resetColor string
	if config.EnableColors {
		methodColor = getMethodColor(method)
		resetColor = ColorReset
	}

	log.Printf("%s→ REQUEST%s  %s%s%s %s%s%s",
		ColorCyan, resetColor,
		methodColor, method, resetColor,
		ColorBlue, path, resetColor)

	if ip != "" {
		log.Printf("%s    IP:%s %s", ColorGray, resetColor, ip)
	}
	if query != "" {
		log.Printf("%s    Query:%s %s", ColorGray, resetColor, truncateString(query, 100))
	}
	if body != "" {
		log.Printf("%s    Body:%s %s", ColorGray, resetColor, body)
	}
}

func logOutgoingResponse(config LoggerConfig, method, path string, status int, latency time.Duration, body string) {
	var statusColor, methodColor, resetColor string
	if config.EnableColors {
		statusColor = getStatusColor(status)
		methodColor = getMethodColor(method)
		resetColor = ColorReset
	}

	log.Printf("%s← RESPONSE%s %s%s%s %s%s%s %s[%d]%s %sTime: %v%s",
		ColorPurple, resetColor,
		methodColor, method, resetColor,
		ColorBlue, path, resetColor,
		statusColor, status, resetColor,
		ColorGray, latency, resetColor)

	if body != "" {
		log.Printf("%s    Response:%s %s", ColorGray, resetColor, body)
	}
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return ColorGreen
	case "POST":
		return ColorBlue
	case "PUT":
		return ColorYellow
	case "DELETE":
		return ColorRed
	default:
		return ColorWhite
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ColorGreen
	case status >= 300 && status < 400:
		return ColorCyan
	case status >= 400 && status < 500:
		return ColorYellow
	case status >= 500:
		return ColorRed
	default:
		return ColorWhite
	}
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}

	if len(body) > 1024 {
		return "[Body too large to log]"
	}

	// Try to format JSON nicely
	if strings.Contains(contentType, "application/json") {
		var jsonData interface{}
		if json.Unmarshal([]byte(body), &jsonData) == nil {
			sanitized := hideSensitiveFields(jsonData)
			if formatted, err := json.Marshal(sanitized); err == nil {
				return string(formatted)
			}
		}
	}

	return truncateString(body, 200)
}

func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{})
		for key, value := range v {
			lowerKey := strings.ToLower(key)
			if isSensitiveField(lowerKey) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	// phone is claimant PII; photo is an inline base64 blob
	sensitive := []string{"password", "token", "secret", "key", "credential", "phone", "photo"}
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func sanitizeResponseBody(body string) string {
	if len(body) == 0 {
		return ""
	}

	var jsonData interface{}
	if json.Unmarshal([]byte(body), &jsonData) == nil {
		if formatted, err := json.MarshalIndent(jsonData, "", "  "); err == nil {
			if len(formatted) > 500 {
				return string(formatted[:500]) + "...\n}"
			}
			return string(formatted)
		}
	}

	return truncateString(body, 200)
}
