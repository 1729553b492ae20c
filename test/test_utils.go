package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// TestTimer วัดเวลาที่ test แต่ละตัวใช้
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

// Stop stops the timer and prints the duration
func (t *TestTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, duration)
	return duration
}

// PerformanceAssertion checks if a test meets performance requirements
func PerformanceAssertion(t *testing.T, testName string, duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("❌ %s performance test failed: took %v, expected less than %v", testName, duration, maxDuration)
	} else {
		t.Logf("✅ %s performance test passed: took %v (under %v limit)", testName, duration, maxDuration)
	}
}

type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
	Error    error
}

// TestSuiteResult รวมผลของ sub-test ทั้งหมดใน suite
type TestSuiteResult struct {
	SuiteName   string
	TotalTests  int
	PassedTests int
	FailedTests int
	TotalTime   time.Duration
	AverageTime time.Duration
	Results     []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{
		SuiteName: suiteName,
		Results:   make([]TestResult, 0),
	}
}

func (tsr *TestSuiteResult) AddResult(result TestResult) {
	tsr.Results = append(tsr.Results, result)
	tsr.TotalTests++
	tsr.TotalTime += result.Duration

	if result.Passed {
		tsr.PassedTests++
	} else {
		tsr.FailedTests++
	}

	tsr.AverageTime = tsr.TotalTime / time.Duration(tsr.TotalTests)
}

// Run เรียก t.Run แล้วจดเวลาและผลลง suite; maxDuration = 0 คือไม่เช็คเวลา
func (tsr *TestSuiteResult) Run(t *testing.T, name string, maxDuration time.Duration, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		timer := NewTestTimer(name)
		defer func() {
			duration := timer.Stop()
			tsr.AddResult(TestResult{Name: name, Duration: duration, Passed: !t.Failed()})
			if maxDuration > 0 {
				PerformanceAssertion(t, name, duration, maxDuration)
			}
		}()
		fn(t)
	})
}

func (tsr *TestSuiteResult) PrintSummary() {
	if tsr.TotalTests == 0 {
		return
	}
	fmt.Printf("\n📊 Test Suite Summary: %s\n", tsr.SuiteName)
	fmt.Printf("   Total Tests: %d\n", tsr.TotalTests)
	fmt.Printf("   Passed: %d ✅\n", tsr.PassedTests)
	fmt.Printf("   Failed: %d ❌\n", tsr.FailedTests)
	fmt.Printf("   Total Time: %v\n", tsr.TotalTime)
	fmt.Printf("   Average Time: %v\n", tsr.AverageTime)
	fmt.Printf("   Success Rate: %.2f%%\n", float64(tsr.PassedTests)/float64(tsr.TotalTests)*100)

	fmt.Printf("\n📋 Individual Test Results:\n")
	for _, result := range tsr.Results {
		status := "✅"
		if !result.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v", status, result.Name, result.Duration)
		if result.Error != nil {
			fmt.Printf(" (Error: %v)", result.Error)
		}
		fmt.Println()
	}
	fmt.Println()
}

// DoJSON ยิง request เข้า fiber app ผ่าน app.Test
func DoJSON(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
