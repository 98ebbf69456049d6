package services

import (
	"context"
	"encoding/base64"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService is a cheap pre-check in front of the vision model:
// label detection decides whether the photo plausibly contains food before
// the expensive generative call is made.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// RecognizeLabels returns the top labels for a base64-encoded image.
func (r *RekognitionService) RecognizeLabels(imageBase64 string) ([]string, error) {
	_, payload, err := splitDataURI(imageBase64)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

var foodLabels = []string{
	"food", "meal", "dish", "plate", "dessert", "fruit", "vegetable",
	"beverage", "drink", "bread", "snack", "breakfast", "lunch", "dinner",
}

// LooksLikeFood reports whether any detected label is food related. The
// boolean is meaningful only when err is nil; callers treat a Rekognition
// failure as "unknown" and proceed to the vision model anyway.
func (r *RekognitionService) LooksLikeFood(imageBase64 string) (bool, error) {
	labels, err := r.RecognizeLabels(imageBase64)
	if err != nil {
		return false, err
	}
	for _, l := range labels {
		ll := strings.ToLower(l)
		for _, f := range foodLabels {
			if strings.Contains(ll, f) {
				return true, nil
			}
		}
	}
	return false, nil
}
