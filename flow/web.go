package flow

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"net/url"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// WebPrompter serves a local page where the user opens the
// authorization URL and pastes the redirect URL back, useful when no
// terminal is attached.
type WebPrompter struct {
	listenAddr  string
	openBrowser bool

	mu       sync.Mutex
	srv      *http.Server
	baseURL  string
	sessions map[string]chan string
}

const promptPage = `<!doctype html><html><head><meta charset="utf-8"><title>Authorization</title>
<style>body{font-family:system-ui,Arial,sans-serif;margin:2rem} label{display:block;font-weight:600;margin-top:1rem} input[type=text]{width:36rem;padding:0.4rem} a.button,button{padding:0.5rem 0.9rem;margin-top:1rem;text-decoration:none;border:1px solid #444;border-radius:6px;background:#f5f5f5;color:#111}</style>
</head><body>
<h2>Authorize access</h2>
<p>Open: <a class="button" href="{{.AuthURL}}" target="_blank" rel="noopener">{{.Host}}</a></p>
<form method="post" action="/submit">
  <input type="hidden" name="id" value="{{.Id}}"/>
  <label for="redirect">After approving, paste the redirect URL</label>
  <input type="text" id="redirect" name="redirect" autofocus/>
  <button type="submit">Submit</button>
</form>
</body></html>`

// NewWebPrompter creates a prompter listening at listenAddr, use
// ":0" for an ephemeral port. With openBrowser the prompt page is
// opened in the default browser, otherwise its URL is logged.
func NewWebPrompter(listenAddr string, openBrowser bool) *WebPrompter {
	return &WebPrompter{listenAddr: listenAddr, openBrowser: openBrowser, sessions: make(map[string]chan string)}
}

func (p *WebPrompter) ensureServer(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.srv != nil {
		return nil
	}
	ln, err := net.Listen("tcp", p.listenAddr)
	if err != nil {
		return err
	}
	p.baseURL = "http://" + ln.Addr().String()

	mux := http.NewServeMux()
	mux.HandleFunc("/authorize", p.handleAuthorize)
	mux.HandleFunc("/submit", p.handleSubmit)

	p.srv = &http.Server{Handler: mux}
	go func() {
		_ = p.srv.Serve(ln)
	}()
	// graceful shutdown on ctx cancel
	go func() {
		<-ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = p.srv.Shutdown(ctx)
		cancel()
	}()
	return nil
}

func (p *WebPrompter) Prompt(ctx context.Context, authURL string) (string, error) {
	if err := p.ensureServer(ctx); err != nil {
		return "", err
	}
	id := uuid.New().String()
	done := make(chan string, 1)
	p.mu.Lock()
	p.sessions[id] = done
	p.mu.Unlock()

	pageURL := fmt.Sprintf("%s/authorize?id=%s&url=%s", p.baseURL, url.QueryEscape(id), url.QueryEscape(authURL))
	p.openURL(pageURL)

	select {
	case <-ctx.Done():
		p.abandon(id)
		return "", ctx.Err()
	case redirect := <-done:
		return redirect, nil
	}
}

func (p *WebPrompter) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	authURL := r.URL.Query().Get("url")
	host := ""
	if parsed, err := url.Parse(authURL); err == nil {
		host = parsed.Host
	}
	data := struct {
		Id, AuthURL, Host string
	}{Id: id, AuthURL: authURL, Host: host}
	tpl := template.Must(template.New("page").Parse(promptPage))
	_ = tpl.Execute(w, data)
}

func (p *WebPrompter) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := r.Form.Get("id")
	redirect := strings.TrimSpace(r.Form.Get("redirect"))
	if redirect == "" {
		http.Error(w, "missing redirect url", http.StatusBadRequest)
		return
	}
	if !p.finish(id, redirect) {
		http.Error(w, "unknown session", http.StatusBadRequest)
		return
	}
	fmt.Fprint(w, "OK: you can close this window")
}

func (p *WebPrompter) finish(id, redirect string) bool {
	p.mu.Lock()
	ch, ok := p.sessions[id]
	if ok {
		delete(p.sessions, id)
	}
	p.mu.Unlock()
	if ok {
		ch <- redirect
		close(ch)
	}
	return ok
}

func (p *WebPrompter) abandon(id string) {
	p.mu.Lock()
	delete(p.sessions, id)
	p.mu.Unlock()
}

func (p *WebPrompter) openURL(u string) {
	if !p.openBrowser {
		log.Printf("authly: open %s", u)
		return
	}
	// best-effort open default browser for macOS/Linux/Windows
	cmds := [][]string{{"open", u}, {"xdg-open", u}, {"powershell", "Start-Process", u}}
	for _, c := range cmds {
		if _, err := exec.LookPath(c[0]); err == nil {
			_ = exec.Command(c[0], c[1:]...).Start()
			break
		}
	}
}
