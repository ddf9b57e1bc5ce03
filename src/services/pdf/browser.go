package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const launchAttempts = 2

// launchError เปิด browser ไม่สำเร็จ ยังไม่ได้เริ่มงานจริง จึงลองใหม่ได้
type launchError struct{ err error }

func (e *launchError) Error() string { return "launch browser: " + e.err.Error() }
func (e *launchError) Unwrap() error { return e.err }

// runFunc สั่งงานในแท็บ ปกติคือ chromedp.Run ซึ่งผูก executor ของแท็บให้ทุก action
type runFunc func(ctx context.Context, actions ...chromedp.Action) error

// browser เปิด Chrome ใหม่ทุกครั้งที่สร้างเอกสาร และปิดทิ้งเสมอเมื่อจบงาน
type browser struct {
	execPath string
	timeout  time.Duration
	logger   *zap.Logger
	exec     runFunc
}

func newBrowser(opts Options) browser {
	return browser{execPath: opts.ExecPath, timeout: opts.Timeout, logger: opts.Logger, exec: chromedp.Run}
}

func allocatorOptions(execPath string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true), // ถ้ารันใน container เป็น root ให้เปิดอันนี้
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return opts
}

// run เปิดแท็บใหม่แล้วเรียก fn ถ้าเปิด browser ไม่ขึ้นจะลองอีกหนึ่งครั้ง
func (b browser) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	var err error
	for attempt := 1; attempt <= launchAttempts; attempt++ {
		err = b.session(ctx, fn)
		var le *launchError
		if err == nil || !errors.As(err, &le) || ctx.Err() != nil {
			return err
		}
		b.logger.Warn("⚠️ เปิด browser ไม่สำเร็จ", zap.Int("attempt", attempt), zap.Error(err))
	}
	return err
}

func (b browser) session(ctx context.Context, fn func(ctx context.Context) error) error {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(b.execPath)...)
	defer allocCancel()

	// สร้างแท็บใหม่
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	// Run ที่ไม่มี action คือการเปิด browser อย่างเดียว
	if err := b.exec(taskCtx); err != nil {
		return &launchError{err: err}
	}
	return fn(taskCtx)
}

// documentLoad ใส่ HTML ลงแท็บโดยตรง ไม่ต้องมี server ให้ browser เรียก
type documentLoad struct{ html string }

func loadDocument(html string) documentLoad {
	return documentLoad{html: html}
}

func (l documentLoad) Do(ctx context.Context) error {
	return chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("get frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, l.html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}.Do(ctx)
}

// waitForAssets รอฟอนต์และรูปภาพโหลดครบก่อนพิมพ์ ไม่งั้นตัวอักษรไทยจะออกมาเป็นฟอนต์สำรอง
func waitForAssets() chromedp.Action {
	const script = `Promise.all([
  document.fonts.ready,
  ...Array.from(document.images).filter(i => !i.complete).map(i => new Promise(r => { i.onload = i.onerror = r; }))
]).then(() => true)`

	return chromedp.Evaluate(script, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithAwaitPromise(true)
	})
}

// printPDF พิมพ์แท็บปัจจุบันเป็น PDF ตามขนาดกระดาษและขอบ ผลลัพธ์เขียนลง out
// ต้องสั่งผ่าน chromedp.Run เท่านั้น นอก Run จะไม่มี executor ของแท็บ
func printPDF(size PageSize, margins Margins, out *[]byte) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		data, _, err := page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(size.WidthInches()).
			WithPaperHeight(size.HeightInches()).
			WithMarginTop(mmToInches(margins.Top)).
			WithMarginRight(mmToInches(margins.Right)).
			WithMarginBottom(mmToInches(margins.Bottom)).
			WithMarginLeft(mmToInches(margins.Left)).
			Do(ctx)
		if err != nil {
			return fmt.Errorf("print to pdf: %w", err)
		}
		*out = data
		return nil
	})
}
