package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/pet-control/internal/config"
)

const (
	LogoMaxSide    = 256
	logoMaxBytes   = 5 << 20
	logoQuality    = 85
	logoKeyPrefix  = "logos/"
	logoMimeOutput = "image/webp"
)

var ErrInvalidDataURI = errors.New("invalid image data uri")

// ObjectPutter é o pedaço do cliente S3 usado pelo upload.
type ObjectPutter interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

// LogoS3 converte o logo para WebP e guarda no bucket.
type LogoS3 struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

func NewLogoS3(cfg *config.Config) *LogoS3 {
	opts := s3.Options{
		Region: cfg.S3Region,
	}
	if cfg.S3AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)
	}
	if cfg.S3Endpoint != "" {
		// MinIO e afins
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return NewLogoS3WithClient(
		s3.New(opts),
		cfg.S3Bucket,
		publicBaseURL(cfg),
	)
}

func NewLogoS3WithClient(client ObjectPutter, bucket, publicURL string) *LogoS3 {
	return &LogoS3{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (l *LogoS3) StoreLogo(ctx context.Context, dataURI string) (string, error) {
	raw, err := ParseDataURI(dataURI)
	if err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode logo: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, Fit(img, LogoMaxSide), &webp.Options{Quality: logoQuality}); err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}

	key := logoKeyPrefix + uuid.NewString() + ".webp"

	_, err = l.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(l.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(buf.Bytes()),
		ContentType:  aws.String(logoMimeOutput),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}

	return l.publicURL + "/" + key, nil
}

// ParseDataURI aceita só "data:image/<tipo>;base64,<conteúdo>".
func ParseDataURI(dataURI string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimSpace(dataURI), ",")
	if !ok ||
		!strings.HasPrefix(header, "data:image/") ||
		!strings.HasSuffix(header, ";base64") {
		return nil, ErrInvalidDataURI
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidDataURI
	}
	if len(raw) == 0 || len(raw) > logoMaxBytes {
		return nil, ErrInvalidDataURI
	}
	return raw, nil
}

// Fit reduz a imagem para caber em side x side, mantendo a proporção.
// Imagens menores voltam intactas.
func Fit(src image.Image, side int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= side && h <= side {
		return src
	}

	nw, nh := side, side
	if w > h {
		nh = h * side / w
	} else {
		nw = w * side / h
	}
	nw, nh = max(nw, 1), max(nh, 1)

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func publicBaseURL(cfg *config.Config) string {
	if cfg.S3PublicURL != "" {
		return cfg.S3PublicURL
	}
	if cfg.S3Endpoint != "" {
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
}
