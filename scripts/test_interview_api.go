package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const (
	baseURL = "http://localhost:3000/api"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{} // No timeout, generation can be slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var v map[string]interface{}
	json.Unmarshal(body, &v)
	return v
}

func main() {
	userToken := os.Getenv("TEST_USER_TOKEN")
	if userToken == "" {
		color.Red("TEST_USER_TOKEN is not set")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Interview Pipeline API Test\n")

	// 1. Create a draft session
	color.Yellow("\n[INTERVIEW] 1. Create Session")
	createReq := map[string]interface{}{
		"content_type": "service",
		"question_ids": []string{"q_overview", "q_pricing", "q_audience"},
	}
	resp, body, err := sendRequest("POST", "/interview/v1/session", userToken, createReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	created := decode(body)
	prettyPrint(created)

	data, _ := created["data"].(map[string]interface{})
	sessionId, _ := data["id"].(string)
	if sessionId == "" {
		color.Red("No session id in response, aborting")
		os.Exit(1)
	}

	// 2. Save an answer containing PII (should be masked)
	color.Yellow("\n[INTERVIEW] 2. Save Answer with PII")
	answerReq := map[string]interface{}{
		"question_id": "q_overview",
		"answer":      "We run a plumbing business, reach us at owner@example.com or 0812-3456-7890.",
	}
	resp, body, err = sendRequest("POST", "/interview/v1/session/"+sessionId+"/answer", userToken, answerReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 3. Save a clean answer
	color.Yellow("\n[INTERVIEW] 3. Save Clean Answer")
	answerReq = map[string]interface{}{
		"question_id": "q_pricing",
		"answer":      "Standard callout is a flat fee, larger jobs are quoted up front.",
	}
	resp, body, err = sendRequest("POST", "/interview/v1/session/"+sessionId+"/answer", userToken, answerReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 4. Finalize (synthesis or fallback)
	color.Yellow("\n[INTERVIEW] 4. Finalize Session")
	resp, body, err = sendRequest("POST", "/interview/v1/session/"+sessionId+"/finalize", userToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 5. Finalize again, must be idempotent
	color.Yellow("\n[INTERVIEW] 5. Finalize Again (idempotent)")
	resp, body, err = sendRequest("POST", "/interview/v1/session/"+sessionId+"/finalize", userToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 6. Generate a blog article from the session
	color.Yellow("\n[GENERATION] 6. Generate Blog Article")
	genReq := map[string]interface{}{
		"content_type": "blog",
	}
	resp, body, err = sendRequest("POST", "/generation/v1/session/"+sessionId+"/generate", userToken, genReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 7. List generation jobs
	color.Yellow("\n[GENERATION] 7. List Jobs")
	resp, body, err = sendRequest("GET", "/generation/v1/session/"+sessionId+"/jobs", userToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Cyan("\n✅ Interview Pipeline API Test Finished")
}
