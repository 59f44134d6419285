package directory

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const redirectAddr = "127.0.0.1:8080"

// authorize runs the interactive consent flow: print the consent url,
// wait for the browser to hit the local redirect, exchange the code.
func authorize(ctx context.Context) (oauth2.TokenSource, error) {
	clientID := os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEETS_CLIENT_ID is not set")
	}
	clientSecret := os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	if clientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_SHEETS_CLIENT_SECRET is not set")
	}

	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  fmt.Sprintf("http://%s", redirectAddr),
		Scopes:       []string{"https://www.googleapis.com/auth/spreadsheets"},
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	state := hex.EncodeToString(nonce)

	fmt.Printf("\nOpen in browser:\n\n%s\n\n", conf.AuthCodeURL(state))

	code, gotState, err := waitForRedirect(ctx)
	if err != nil {
		return nil, err
	}
	if gotState != state {
		return nil, fmt.Errorf("oauth state mismatch")
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return conf.TokenSource(ctx, token), nil
}

// waitForRedirect accepts exactly one connection on the redirect
// address, pulls code and state out of the callback query, and stops
// listening. This is not a long-running server.
func waitForRedirect(ctx context.Context) (code, state string, err error) {
	listener, err := net.Listen("tcp", redirectAddr)
	if err != nil {
		return "", "", fmt.Errorf("listen on %s: %w", redirectAddr, err)
	}
	defer listener.Close()

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	conn, err := listener.Accept()
	if err != nil {
		return "", "", fmt.Errorf("accept redirect callback: %w", err)
	}
	defer conn.Close()

	req, err := http.ReadRequest(bufio.NewReader(conn))
	if err != nil {
		return "", "", fmt.Errorf("read redirect callback: %w", err)
	}

	query := req.URL.Query()
	code = query.Get("code")
	state = query.Get("state")
	if code == "" {
		return "", "", fmt.Errorf("redirect callback carried no code")
	}

	message := "Go back to your terminal :)"
	fmt.Fprintf(conn, "HTTP/1.1 200 OK\r\ncontent-length: %d\r\n\r\n%s", len(message), message)

	return code, state, nil
}
