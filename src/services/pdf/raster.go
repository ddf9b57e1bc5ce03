package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"image"
	"image/draw"
	"image/png"
	"math"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ความกว้างหน้าเอกสารตอนถ่ายภาพ (A4 ที่ 96 dpi)
const (
	viewportWidth  = 794
	viewportHeight = 1123
)

var stripsTmpl = template.Must(template.New("strips").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  @page { size: {{.Width}}mm {{.Height}}mm; margin: 0; }
  html, body { margin: 0; padding: 0; background: white; }
  .page { width: {{.Width}}mm; height: {{.Height}}mm; overflow: hidden; page-break-after: always; }
  .page:last-child { page-break-after: auto; }
  .page img { display: block; width: 100%; }
</style>
</head>
<body>
{{- range .Strips}}
<div class="page"><img src="{{.}}"></div>
{{- end}}
</body>
</html>`))

// RasterConverter ถ่ายภาพเอกสารทั้งหน้าด้วยความละเอียด 2 เท่า แล้วตัดเป็นหน้าละหนึ่งภาพ
// ได้ผลแบบเดียวกับการบันทึก PDF จากฝั่งหน้าเว็บ ข้อความใน PDF จะเลือกไม่ได้
type RasterConverter struct {
	browser browser
	page    PageSize
	scale   float64
	logger  *zap.Logger
}

func NewRasterConverter(opts Options) *RasterConverter {
	opts = opts.withDefaults()
	return &RasterConverter{
		browser: newBrowser(opts),
		page:    opts.Page,
		scale:   opts.Scale,
		logger:  opts.Logger,
	}
}

func (c *RasterConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, errors.New("empty document")
	}

	start := time.Now()
	var data []byte
	var pages int
	err := c.browser.run(ctx, func(ctx context.Context) error {
		var shot []byte
		if err := c.browser.exec(ctx, c.captureTasks(html, &shot)...); err != nil {
			return fmt.Errorf("capture document: %w", err)
		}

		strips, err := SlicePages(shot, c.page)
		if err != nil {
			return err
		}
		pages = len(strips)

		doc, err := stripsDocument(strips, c.page)
		if err != nil {
			return err
		}
		if err := c.browser.exec(ctx, loadDocument(doc), waitForAssets(), printPDF(c.page, Margins{}, &data)); err != nil {
			return fmt.Errorf("print pages: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("📄 สร้าง PDF สำเร็จ",
		zap.String("strategy", string(StrategyRaster)),
		zap.Int("pages", pages),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)
	return Normalize(data), nil
}

// captureTasks ถ่ายภาพเอกสารทั้งหน้าที่ความละเอียด scale เท่า
func (c *RasterConverter) captureTasks(html string, shot *[]byte) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.EmulateViewport(viewportWidth, viewportHeight, chromedp.EmulateScale(c.scale)),
		loadDocument(html),
		waitForAssets(),
		chromedp.FullScreenshot(shot, 100),
	}
}

// stripHeight ความสูงของภาพหนึ่งหน้า ให้สัดส่วนเท่ากับกระดาษ
func stripHeight(width int, size PageSize) int {
	h := int(math.Round(float64(width) * size.HeightMM / size.WidthMM))
	if h < 1 {
		h = 1
	}
	return h
}

// SlicePages ตัดภาพ PNG ยาวทั้งเอกสารเป็นภาพละหนึ่งหน้า หน้าสุดท้ายอาจสั้นกว่าหน้าอื่น
func SlicePages(shot []byte, size PageSize) ([][]byte, error) {
	src, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, errors.New("empty screenshot")
	}

	step := stripHeight(bounds.Dx(), size)
	strips := make([][]byte, 0, (bounds.Dy()+step-1)/step)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		bottom := y + step
		if bottom > bounds.Max.Y {
			bottom = bounds.Max.Y
		}

		dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bottom-y))
		draw.Draw(dst, dst.Bounds(), src, image.Point{X: bounds.Min.X, Y: y}, draw.Src)

		var buf bytes.Buffer
		if err := png.Encode(&buf, dst); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", len(strips)+1, err)
		}
		strips = append(strips, buf.Bytes())
	}
	return strips, nil
}

func stripsDocument(strips [][]byte, size PageSize) (string, error) {
	uris := make([]template.URL, len(strips))
	for i, s := range strips {
		uris[i] = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(s))
	}

	var b strings.Builder
	err := stripsTmpl.Execute(&b, struct {
		Width, Height float64
		Strips        []template.URL
	}{size.WidthMM, size.HeightMM, uris})
	if err != nil {
		return "", fmt.Errorf("build page document: %w", err)
	}
	return b.String(), nil
}
