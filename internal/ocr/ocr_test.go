package ocr

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	text string
	tsv  string
	err  error
}

func (s stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if s.err != nil {
		return nil, []byte("tesseract stderr"), s.err
	}
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		return []byte(s.tsv), nil, nil
	}
	return []byte(s.text), nil, nil
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and runs of spaces", "이용거리\t\t3.20km   합계", "이용거리 3.20km 합계"},
		{"blank line collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces per line", "a   \nb  ", "a\nb"},
		{"full width digits", "승인번호 １２３４５６", "승인번호 123456"},
		{"surrounding whitespace", "  따릉이  \n", "따릉이"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestHeuristicConfidence(t *testing.T) {
	plain := heuristicConfidence("no receipt markers here")
	rich := heuristicConfidence("승인번호 12345678 결제금액 4,500원 14:02 이용거리 3.20km")

	assert.InDelta(t, 0.2, plain, 0.001, "marker-free text stays at the base score")
	assert.Greater(t, rich, plain)
	assert.LessOrEqual(t, rich, float32(1.0))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "jpg", NormalizeExt(".JPG"))
	assert.Equal(t, "png", NormalizeExt("png"))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, slog.Default())
	_, err := e.Extract(context.Background(), "/tmp/receipt.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestExtractImageNormalizesAndScores(t *testing.T) {
	e := NewExtractor(Config{}, slog.Default())
	e.runner = stubRunner{text: "따릉이  이용내역\r\n이용거리   3.20km\n승인번호 12345678"}

	res, err := e.Extract(context.Background(), "/tmp/receipt.jpg")
	require.NoError(t, err)
	assert.Equal(t, "따릉이 이용내역\n이용거리 3.20km\n승인번호 12345678", res.Text)
	assert.Equal(t, "kor+eng", res.Language)
	assert.Greater(t, res.Confidence, float32(0.2))
}

func TestExtractImageBlendsTSVConfidence(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t20\t90\t따릉이\n" +
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t20\t80\t이용내역\n" +
		"5\t1\t1\t1\t1\t3\t130\t10\t50\t20\t-1\t\n"
	e := NewExtractor(Config{EnableTSVConfidence: true}, slog.Default())
	e.runner = stubRunner{text: "따릉이 이용내역", tsv: tsv}

	res, err := e.Extract(context.Background(), "/tmp/receipt.jpg")
	require.NoError(t, err)
	// mean word conf is 0.85; heuristic for this text is 0.2.
	assert.InDelta(t, 0.7*0.85+0.3*0.2, float64(res.Confidence), 0.001)
}

func TestExtractImagePropagatesRunnerError(t *testing.T) {
	e := NewExtractor(Config{}, slog.Default())
	e.runner = stubRunner{err: errors.New("exit status 1")}

	res, err := e.Extract(context.Background(), "/tmp/receipt.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
	assert.Equal(t, []string{"tesseract stderr"}, res.Warnings)
}
