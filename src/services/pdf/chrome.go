package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ChromeConverter พิมพ์ HTML เป็น PDF ด้วย headless Chrome
type ChromeConverter struct {
	browser browser
	page    PageSize
	margins Margins
	logger  *zap.Logger
}

func NewChromeConverter(opts Options) *ChromeConverter {
	opts = opts.withDefaults()
	return &ChromeConverter{
		browser: newBrowser(opts),
		page:    opts.Page,
		margins: opts.Margins,
		logger:  opts.Logger,
	}
}

func (c *ChromeConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, errors.New("empty document")
	}

	start := time.Now()
	var data []byte
	err := c.browser.run(ctx, func(ctx context.Context) error {
		if err := c.browser.exec(ctx, c.tasks(html, &data)...); err != nil {
			return fmt.Errorf("render document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("📄 สร้าง PDF สำเร็จ",
		zap.String("strategy", string(StrategyChrome)),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)
	return Normalize(data), nil
}

// tasks โหลดเอกสาร รอฟอนต์ แล้วพิมพ์ ทั้งหมดในการสั่งครั้งเดียว
func (c *ChromeConverter) tasks(html string, out *[]byte) chromedp.Tasks {
	return chromedp.Tasks{
		loadDocument(html),
		waitForAssets(),
		printPDF(c.page, c.margins, out),
	}
}
