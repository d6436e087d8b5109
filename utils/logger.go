package utils

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

var (
	auditLogger *log.Logger
	auditOnce   sync.Once
)

// initAuditLogger mở file log theo ngày, chỉ chạy một lần.
// Nếu không mở được file thì fallback về stderr.
func initAuditLogger() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Không tạo được thư mục logs: %v", err)
		auditLogger = log.New(os.Stderr, "AUDIT: ", log.Ldate|log.Ltime)
		return
	}

	timestamp := time.Now().Format("2006-01-02")
	logFile, err := os.OpenFile(fmt.Sprintf("logs/audit-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Không mở được file audit log: %v", err)
		auditLogger = log.New(os.Stderr, "AUDIT: ", log.Ldate|log.Ltime)
		return
	}

	auditLogger = log.New(logFile, "AUDIT: ", log.Ldate|log.Ltime)
}

// Audit ghi một dòng audit (chuyển trạng thái booking, job định kỳ) vào file
// log theo ngày.
func Audit(format string, v ...interface{}) {
	auditOnce.Do(initAuditLogger)
	auditLogger.Printf(format, v...)
}
