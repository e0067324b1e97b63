package model

import (
	"encoding/json"
	"testing"
)

func TestFirstHTTPSPicksFirstInResponseOrder(t *testing.T) {
	resp := &TunnelsResponse{
		Tunnels: []AgentTunnel{
			{PublicURL: "http://abcd.example.ngrok.io"},
			{PublicURL: "https://abcd.example.ngrok.io"},
			{PublicURL: "https://wxyz.example.ngrok.io"},
		},
	}
	url, ok := resp.FirstHTTPS()
	if !ok {
		t.Fatal("FirstHTTPS found nothing")
	}
	if url != "https://abcd.example.ngrok.io" {
		t.Errorf("url = %q, want first https entry", url)
	}
}

func TestFirstHTTPSNoMatch(t *testing.T) {
	resp := &TunnelsResponse{
		Tunnels: []AgentTunnel{
			{PublicURL: "http://abcd.example.ngrok.io"},
		},
	}
	if url, ok := resp.FirstHTTPS(); ok {
		t.Errorf("FirstHTTPS = %q, want no match", url)
	}

	empty := &TunnelsResponse{}
	if _, ok := empty.FirstHTTPS(); ok {
		t.Error("FirstHTTPS on empty response reported a match")
	}
}

func TestTunnelsResponseDecoding(t *testing.T) {
	body := `{"tunnels":[{"name":"web","public_url":"https://abcd.example.ngrok.io","proto":"https","config":{"addr":"https://localhost:5001"}}],"uri":"/api/tunnels"}`

	var resp TunnelsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(resp.Tunnels) != 1 {
		t.Fatalf("got %d tunnels, want 1", len(resp.Tunnels))
	}
	tun := resp.Tunnels[0]
	if tun.PublicURL != "https://abcd.example.ngrok.io" {
		t.Errorf("PublicURL = %q", tun.PublicURL)
	}
	if tun.Config.Addr != "https://localhost:5001" {
		t.Errorf("Config.Addr = %q", tun.Config.Addr)
	}
}
