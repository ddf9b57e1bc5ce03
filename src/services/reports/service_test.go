package reports

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"Evaluation-System/src/models"
	"Evaluation-System/src/services/evaluations"
	"Evaluation-System/src/services/pdf"
	"Evaluation-System/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockConverter struct{ mock.Mock }

func (m *mockConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	deletes int
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	b, ok := c.data[key]
	return b, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	delete(c.data, key)
	return nil
}

func (c *memoryCache) put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

func (c *memoryCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.data))
	for k := range c.data {
		out = append(out, k)
	}
	return out
}

// blockingConverter ค้างไว้จนกว่าจะปล่อย ใช้ทดสอบคำขอพร้อมกัน
type blockingConverter struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingConverter) Convert(context.Context, string) ([]byte, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
	}
	<-b.release
	return []byte("%PDF-shared"), nil
}

// gateConverter รอจนกว่าจะปล่อยหรือ ctx ถูกยกเลิก
type gateConverter struct {
	calls     atomic.Int32
	cancelled atomic.Bool
	started   chan struct{}
	release   chan struct{}
	stopped   chan struct{}
}

func newGateConverter() *gateConverter {
	return &gateConverter{
		started: make(chan struct{}),
		release: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (g *gateConverter) Convert(ctx context.Context, _ string) ([]byte, error) {
	if g.calls.Add(1) == 1 {
		close(g.started)
	}
	defer close(g.stopped)
	select {
	case <-g.release:
		return []byte("%PDF-gate"), nil
	case <-ctx.Done():
		g.cancelled.Store(true)
		return nil, ctx.Err()
	}
}

func validRecord() models.EvaluationRecord {
	return models.EvaluationRecord{
		EmployeeName:    "สมชาย ใจดี",
		Department:      "ฝ่ายบุคคล",
		EvaluationMonth: "มกราคม",
		EvaluationYear:  "2567",
	}
}

func TestGenerate(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Report Generate Tests")
	defer suiteResult.PrintSummary()

	pdfBytes := []byte("%PDF-1.4 test")

	suiteResult.Run(t, "Converts And Caches", 200*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		conv.On("Convert", mock.Anything, mock.MatchedBy(func(html string) bool {
			return strings.Contains(html, "สมชาย ใจดี")
		})).Return(pdfBytes, nil).Once()
		cache := newMemoryCache()
		svc := NewService(conv, cache, zap.NewNop(), Config{})

		doc, err := svc.Generate(context.Background(), validRecord())
		require.NoError(t, err)

		assert.Equal(t, pdfBytes, doc.Bytes)
		assert.Equal(t, ContentTypePDF, doc.ContentType)
		assert.Equal(t, "evaluation-สมชาย ใจดี-มกราคม-2567.pdf", doc.FileName)
		assert.False(t, doc.Cached)
		require.Len(t, cache.keys(), 1)
		assert.True(t, strings.HasPrefix(cache.keys()[0], "evaluation:pdf:"))
		conv.AssertExpectations(t)
	})

	suiteResult.Run(t, "Second Call Hits Cache", 200*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		conv.On("Convert", mock.Anything, mock.Anything).Return(pdfBytes, nil).Once()
		svc := NewService(conv, newMemoryCache(), zap.NewNop(), Config{})

		_, err := svc.Generate(context.Background(), validRecord())
		require.NoError(t, err)
		doc, err := svc.Generate(context.Background(), validRecord())
		require.NoError(t, err)

		assert.True(t, doc.Cached)
		assert.Equal(t, pdfBytes, doc.Bytes)
		conv.AssertNumberOfCalls(t, "Convert", 1)
	})

	suiteResult.Run(t, "Cache Error Treated As Miss", 200*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		conv.On("Convert", mock.Anything, mock.Anything).Return(pdfBytes, nil).Once()
		cache := newMemoryCache()
		cache.getErr = errors.New("connection refused")
		svc := NewService(conv, cache, zap.NewNop(), Config{})

		doc, err := svc.Generate(context.Background(), validRecord())
		require.NoError(t, err)
		assert.Equal(t, pdfBytes, doc.Bytes)
	})

	suiteResult.Run(t, "Validation Stops Before Convert", 200*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		svc := NewService(conv, nil, nil, Config{})

		r := validRecord()
		r.Department = " "
		_, err := svc.Generate(context.Background(), r)

		var verr *evaluations.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "department")
		assert.False(t, errors.Is(err, ErrRenderFailed))
		conv.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything)
	})

	suiteResult.Run(t, "Converter Failure Is Opaque", 200*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		conv.On("Convert", mock.Anything, mock.Anything).Return(nil, errors.New("chrome crashed"))
		cache := newMemoryCache()
		svc := NewService(conv, cache, zap.NewNop(), Config{})

		doc, err := svc.Generate(context.Background(), validRecord())

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrRenderFailed)
		assert.Empty(t, cache.keys())
	})

	suiteResult.Run(t, "Concurrent Requests Share One Conversion", 2*time.Second, func(t *testing.T) {
		conv := &blockingConverter{started: make(chan struct{}), release: make(chan struct{})}
		svc := NewService(conv, nil, zap.NewNop(), Config{})

		const n = 5
		results := make([][]byte, n)
		errs := make([]error, n)
		var wg sync.WaitGroup
		call := func(i int) {
			defer wg.Done()
			doc, err := svc.Generate(context.Background(), validRecord())
			errs[i] = err
			if doc != nil {
				results[i] = doc.Bytes
			}
		}

		wg.Add(n)
		go call(0)
		<-conv.started
		for i := 1; i < n; i++ {
			go call(i)
		}
		time.Sleep(200 * time.Millisecond)
		close(conv.release)
		wg.Wait()

		assert.Equal(t, int32(1), conv.calls.Load())
		for i := 0; i < n; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, []byte("%PDF-shared"), results[i])
		}
	})

	suiteResult.Run(t, "Cancelled Request Stops Conversion", 2*time.Second, func(t *testing.T) {
		conv := newGateConverter()
		svc := NewService(conv, nil, zap.NewNop(), Config{})

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			_, err := svc.Generate(ctx, validRecord())
			errCh <- err
		}()

		<-conv.started
		cancel()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, ErrRenderFailed)
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Generate did not return after cancel")
		}
		select {
		case <-conv.stopped:
			assert.True(t, conv.cancelled.Load())
		case <-time.After(time.Second):
			t.Fatal("conversion kept running after the only request left")
		}
	})

	suiteResult.Run(t, "Shared Conversion Survives One Cancelled Waiter", 2*time.Second, func(t *testing.T) {
		conv := newGateConverter()
		svc := NewService(conv, nil, zap.NewNop(), Config{})

		ctxA, cancelA := context.WithCancel(context.Background())
		errA := make(chan error, 1)
		go func() {
			_, err := svc.Generate(ctxA, validRecord())
			errA <- err
		}()
		<-conv.started

		type result struct {
			doc *Document
			err error
		}
		resB := make(chan result, 1)
		go func() {
			doc, err := svc.Generate(context.Background(), validRecord())
			resB <- result{doc, err}
		}()
		time.Sleep(200 * time.Millisecond)

		cancelA()
		assert.ErrorIs(t, <-errA, context.Canceled)
		time.Sleep(50 * time.Millisecond)
		assert.False(t, conv.cancelled.Load())

		close(conv.release)
		r := <-resB
		require.NoError(t, r.err)
		assert.Equal(t, []byte("%PDF-gate"), r.doc.Bytes)
		assert.Equal(t, int32(1), conv.calls.Load())
	})

	suiteResult.Run(t, "Corrupt Cache Entry Evicted", 200*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		conv.On("Convert", mock.Anything, mock.Anything).Return(pdfBytes, nil).Twice()
		cache := newMemoryCache()
		svc := NewService(conv, cache, zap.NewNop(), Config{})

		_, err := svc.Generate(context.Background(), validRecord())
		require.NoError(t, err)
		require.Len(t, cache.keys(), 1)
		key := cache.keys()[0]
		cache.put(key, []byte("<html>not a pdf</html>"))

		doc, err := svc.Generate(context.Background(), validRecord())
		require.NoError(t, err)

		assert.False(t, doc.Cached)
		assert.Equal(t, pdfBytes, doc.Bytes)
		assert.Equal(t, 1, cache.deletes)
		got, ok, _ := cache.Get(context.Background(), key)
		assert.True(t, ok)
		assert.Equal(t, pdfBytes, got)
		conv.AssertNumberOfCalls(t, "Convert", 2)
	})

	suiteResult.Run(t, "Fingerprint Carried To Document", 500*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		conv.On("Convert", mock.Anything, mock.Anything).Return(pdfBytes, nil)
		svc := NewService(conv, nil, zap.NewNop(), Config{Render: evaluations.RenderOptions{Fingerprint: true}})

		doc, err := svc.Generate(context.Background(), validRecord())
		require.NoError(t, err)
		assert.Equal(t, evaluations.Fingerprint(validRecord()), doc.Fingerprint)
	})
}

func TestServiceHelpers(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Report Helper Tests")
	defer suiteResult.PrintSummary()

	suiteResult.Run(t, "Nil Converter Panics", 50*time.Millisecond, func(t *testing.T) {
		assert.Panics(t, func() { NewService(nil, nil, nil, Config{}) })
	})

	suiteResult.Run(t, "Preview Skips Validation", 100*time.Millisecond, func(t *testing.T) {
		svc := NewService(new(mockConverter), nil, nil, Config{Render: evaluations.RenderOptions{OrgName: "องค์กรทดสอบ"}})

		html, err := svc.Preview(models.EvaluationRecord{})
		require.NoError(t, err)
		assert.Contains(t, html, "องค์กรทดสอบ")
	})

	suiteResult.Run(t, "Cache Key Depends On Settings", 50*time.Millisecond, func(t *testing.T) {
		conv := new(mockConverter)
		a := NewService(conv, nil, nil, Config{Strategy: pdf.StrategyChrome, Variant: "A4"})
		b := NewService(conv, nil, nil, Config{Strategy: pdf.StrategyRaster, Variant: "A4"})
		c := NewService(conv, nil, nil, Config{Strategy: pdf.StrategyChrome, Variant: "A5"})

		assert.Equal(t, a.CacheKey("<html>"), a.CacheKey("<html>"))
		assert.NotEqual(t, a.CacheKey("<html>"), a.CacheKey("<html> "))
		assert.NotEqual(t, a.CacheKey("<html>"), b.CacheKey("<html>"))
		assert.NotEqual(t, a.CacheKey("<html>"), c.CacheKey("<html>"))
		assert.Len(t, a.CacheKey("x"), len("evaluation:pdf:")+64)
	})

	suiteResult.Run(t, "File Names", 50*time.Millisecond, func(t *testing.T) {
		r := validRecord()
		assert.Equal(t, "evaluation-สมชาย ใจดี-มกราคม-2567.pdf", FileName(r, pdf.StrategyChrome))
		assert.Equal(t, "แบบประเมิน-สมชาย ใจดี-มกราคม-2567.pdf", FileName(r, pdf.StrategyRaster))

		assert.Equal(t, "evaluation-ไม่ระบุ-ไม่ระบุ-ไม่ระบุ.pdf", FileName(models.EvaluationRecord{}, pdf.StrategyChrome))

		r.EmployeeName = `a/b\c:d*e?"f<g>h|i` + "\n"
		assert.Equal(t, "evaluation-a_b_c_d_e__f_g_h_i-มกราคม-2567.pdf", FileName(r, pdf.StrategyChrome))
	})
}
