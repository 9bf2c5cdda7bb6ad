package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/derived"
)

func DistributionToResponse(dist derived.Distribution) []dto.StatusBucketResponse {
	buckets := make([]dto.StatusBucketResponse, len(dist.Buckets))
	for i, b := range dist.Buckets {
		buckets[i] = dto.StatusBucketResponse{
			Status:  string(b.Status),
			Count:   b.Count,
			Percent: b.Percent,
		}
	}
	return buckets
}
