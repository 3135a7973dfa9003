// Package browser drives a single Chrome tab through the domain.Page
// capability interface. It is the only package that touches chromedp.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// ErrNoMatch reports that a selector matched nothing; callers treat it
// as "field absent" and fall back.
var ErrNoMatch = errors.New("browser: no element matched")

const defaultOpTimeout = 10 * time.Second

type Options struct {
	Headless bool
	Locale   string
}

type Tab struct {
	ctx context.Context
}

// New launches Chrome and opens one tab. The returned cleanup closes the
// tab and the browser process.
func New(parent context.Context, opts Options) (*Tab, func(), error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("lang", opts.Locale),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1440, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	// force the browser to start so failures surface here, not mid-run
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, nil, fmt.Errorf("launch chrome: %w", err)
	}

	cleanup := func() {
		cancelTab()
		cancelAlloc()
	}
	return &Tab{ctx: tabCtx}, cleanup, nil
}

// run executes actions on the tab's own context chain; the caller ctx is
// only consulted for early cancellation.
func (t *Tab) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tctx := t.ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(tctx, timeout)
		defer cancel()
	}
	return chromedp.Run(tctx, actions...)
}

func (t *Tab) eval(ctx context.Context, expr string, out any) error {
	if out == nil {
		var sink any
		out = &sink
	}
	return t.run(ctx, defaultOpTimeout, chromedp.Evaluate(expr, out))
}

func (t *Tab) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	return t.run(ctx, timeout, chromedp.Navigate(url))
}

// WaitForAny polls until one of the selectors is present or the timeout
// elapses.
func (t *Tab) WaitForAny(ctx context.Context, selectors []string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		for _, sel := range selectors {
			var found bool
			expr := fmt.Sprintf(`document.querySelector(%q) !== null`, sel)
			if err := t.eval(ctx, expr, &found); err != nil {
				return err
			}
			if found {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: none of %v appeared within %s", ErrNoMatch, selectors, timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (t *Tab) Count(ctx context.Context, selector string) (int, error) {
	var n int
	expr := fmt.Sprintf(`document.querySelectorAll(%q).length`, selector)
	if err := t.eval(ctx, expr, &n); err != nil {
		return 0, err
	}
	return n, nil
}

type probe struct {
	Found bool   `json:"found"`
	Value string `json:"value"`
}

func (t *Tab) Text(ctx context.Context, selector string) (string, error) {
	var p probe
	expr := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); return {found: !!el, value: el ? el.innerText : ""}; })()`,
		selector)
	if err := t.eval(ctx, expr, &p); err != nil {
		return "", err
	}
	if !p.Found {
		return "", ErrNoMatch
	}
	return p.Value, nil
}

func (t *Tab) Texts(ctx context.Context, selector string) ([]string, error) {
	var out []string
	expr := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(el => el.innerText)`,
		selector)
	if err := t.eval(ctx, expr, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tab) Attribute(ctx context.Context, selector, name string) (string, bool, error) {
	var p probe
	expr := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); const v = el ? el.getAttribute(%q) : null; return {found: v !== null, value: v || ""}; })()`,
		selector, name)
	if err := t.eval(ctx, expr, &p); err != nil {
		return "", false, err
	}
	return p.Value, p.Found, nil
}

func (t *Tab) Click(ctx context.Context, selector string) error {
	var clicked bool
	expr := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); if (!el) return false; el.click(); return true; })()`,
		selector)
	if err := t.eval(ctx, expr, &clicked); err != nil {
		return err
	}
	if !clicked {
		return ErrNoMatch
	}
	return nil
}

func (t *Tab) SendKey(ctx context.Context, key string) error {
	code := key
	switch key {
	case "End":
		code = kb.End
	case "Enter":
		code = kb.Enter
	case "Home":
		code = kb.Home
	}
	return t.run(ctx, defaultOpTimeout, chromedp.KeyEvent(code))
}

// ScrollBy dispatches a synthetic mouse-wheel event over the viewport
// center, which also reaches inner scroll panels.
func (t *Tab) ScrollBy(ctx context.Context, deltaY int) error {
	return t.run(ctx, defaultOpTimeout, chromedp.ActionFunc(func(c context.Context) error {
		return input.DispatchMouseEvent(input.MouseWheel, 720, 400).
			WithDeltaX(0).
			WithDeltaY(float64(deltaY)).
			Do(c)
	}))
}

func (t *Tab) Evaluate(ctx context.Context, expr string, out any) error {
	return t.eval(ctx, expr, out)
}

func (t *Tab) HTML(ctx context.Context, selector string) (string, error) {
	var p probe
	expr := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); return {found: !!el, value: el ? el.outerHTML : ""}; })()`,
		selector)
	if err := t.eval(ctx, expr, &p); err != nil {
		return "", err
	}
	if !p.Found {
		return "", ErrNoMatch
	}
	return p.Value, nil
}
