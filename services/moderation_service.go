package services

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type ModerationService struct {
	client *rekognition.Client
}

func NewModerationService() (*ModerationService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &ModerationService{client: rekognition.NewFromConfig(cfg)}, nil
}

// CheckImage rejects uploads Rekognition flags with a moderation label at
// 80% confidence or higher.
func (m *ModerationService) CheckImage(data []byte) error {
	out, err := m.client.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: data},
		MinConfidence: aws.Float32(80),
	})
	if err != nil {
		return err
	}

	if len(out.ModerationLabels) > 0 {
		return invalid("image rejected by content moderation")
	}
	return nil
}
