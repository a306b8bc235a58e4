package repository

import (
	"context"

	"app/internal/domain/model"
)

// 認証自体は外部サービスの責務。ここでは注文時のスナップショット取得だけを約束する。
type UserRepository interface {
	FindByID(ctx context.Context, userID int64) (model.User, error)
}
