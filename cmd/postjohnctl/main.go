package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte, headers map[string]string) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func main() {
	var (
		baseURL = envOr("POSTJOHN_URL", "http://localhost:5000")
		out     = envOr("POSTJOHN_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "postjohnctl",
		Short: "CLI cliente para Postjohn (register/login/send)",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del API (env POSTJOHN_URL)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	httpClient := &http.Client{Timeout: timeout}
	cl := &client{BaseURL: baseURL, OutFormat: out, HTTP: httpClient}

	// register / login comparten flags
	var email, pass string
	authRun := func(path string) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if email == "" || pass == "" {
				return fmt.Errorf("--email y --password son requeridos")
			}
			b, _ := json.Marshal(map[string]string{"email": email, "password": pass})
			status, body, err := cl.do("POST", path, b, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			if status/100 != 2 {
				return fmt.Errorf("fallo: status=%d", status)
			}
			return nil
		}
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Registrar un usuario nuevo (POST /register)",
		RunE:  authRun("/register"),
	}
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login con credenciales existentes (POST /login)",
		RunE:  authRun("/login"),
	}
	for _, cmd := range []*cobra.Command{registerCmd, loginCmd} {
		cmd.Flags().StringVar(&email, "email", "", "Email del usuario")
		cmd.Flags().StringVar(&pass, "password", "", "Password del usuario")
	}

	// send
	var to, subject, body, bodyFile, token string
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Despachar un email (POST /send-bulk-email)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" || subject == "" {
				return fmt.Errorf("--to y --subject son requeridos")
			}
			html := body
			if bodyFile != "" {
				b, err := os.ReadFile(bodyFile)
				if err != nil {
					return err
				}
				html = string(b)
			}
			if html == "" {
				return fmt.Errorf("--body o --body-file es requerido")
			}
			payload, _ := json.Marshal(map[string]string{"to": to, "subject": subject, "body": html})
			var headers map[string]string
			if token != "" {
				headers = map[string]string{"Authorization": "Bearer " + token}
			}
			status, respBody, err := cl.do("POST", "/send-bulk-email", payload, headers)
			if err != nil {
				return err
			}
			cl.print(status, respBody)
			if status/100 != 2 {
				return fmt.Errorf("fallo: status=%d", status)
			}
			return nil
		},
	}
	sendCmd.Flags().StringVar(&to, "to", "", "Destinatario")
	sendCmd.Flags().StringVar(&subject, "subject", "", "Subject")
	sendCmd.Flags().StringVar(&body, "body", "", "Body HTML inline")
	sendCmd.Flags().StringVar(&bodyFile, "body-file", "", "Archivo con el body HTML")
	sendCmd.Flags().StringVar(&token, "token", "", "Bearer token (solo si el server tiene auth.require_bearer)")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Chequear /readyz",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, respBody, err := cl.do("GET", "/readyz", nil, nil)
			if err != nil {
				return err
			}
			cl.print(status, respBody)
			if status/100 != 2 {
				return fmt.Errorf("no ready: status=%d", status)
			}
			return nil
		},
	}

	root.AddCommand(registerCmd, loginCmd, sendCmd, healthCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
