package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// カートIDはセッションではなく呼び出し側が明示的に渡す。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemOutput struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	ColorID   int64  `json:"color_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type CartOutput struct {
	CartID int64            `json:"cart_id"`
	Items  []CartItemOutput `json:"items"`
	Total  int64            `json:"total"`
}

type AddToCartInput struct {
	CartID    int64 // 0なら新しいカートを作る
	ProductID int64
	ColorID   int64
	Price     int64
}

func (u *CartUsecase) GetCart(ctx context.Context, cartID int64) (CartOutput, error) {
	if cartID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "No such a cart id data")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartOutput{}, NewHTTPError(http.StatusBadRequest, "No such a cart id data")
		}
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartOutput(ctx, cart.ID)
}

// AddToCart は明細を追加する（同一の商品×色は数量+1）。
// カートが無ければ作ってそのIDを返す。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddToCartInput) (CartOutput, error) {
	if in.Price <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "price is missing")
	}
	if in.ProductID <= 0 || in.ColorID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "Fail to find products")
	}

	//商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartOutput{}, NewHTTPError(http.StatusBadRequest, "Fail to find products")
		}
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "Fail to find products")
	}

	var cart model.Cart
	if in.CartID > 0 {
		cart, err = u.cartRepo.FindByID(ctx, in.CartID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return CartOutput{}, NewHTTPError(http.StatusBadRequest, "No such a cart id data")
			}
			return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	} else {
		cart, err = u.cartRepo.Create(ctx)
		if err != nil {
			return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	if err := u.cartItemRepo.UpsertAddOne(ctx, cart.ID, in.ProductID, in.ColorID, in.Price); err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartOutput(ctx, cart.ID)
}

// AddOne は明細の数量+1。
func (u *CartUsecase) AddOne(ctx context.Context, cartID int64, cartItemID int64) (CartOutput, error) {
	item, err := u.ownedItem(ctx, cartID, cartItemID)
	if err != nil {
		return CartOutput{}, err
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, item.Quantity+1); err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartOutput(ctx, cartID)
}

// SubOne は明細の数量-1（下限1）。
func (u *CartUsecase) SubOne(ctx context.Context, cartID int64, cartItemID int64) (CartOutput, error) {
	item, err := u.ownedItem(ctx, cartID, cartItemID)
	if err != nil {
		return CartOutput{}, err
	}

	qty := item.Quantity - 1
	if qty < 1 {
		qty = 1
	}
	if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, qty); err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartOutput(ctx, cartID)
}

func (u *CartUsecase) DeleteItem(ctx context.Context, cartID int64, cartItemID int64) error {
	item, err := u.ownedItem(ctx, cartID, cartItemID)
	if err != nil {
		return err
	}

	if err := u.cartItemRepo.DeleteByID(ctx, item.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 明細が指定カートのものかを確認して返す
func (u *CartUsecase) ownedItem(ctx context.Context, cartID int64, cartItemID int64) (model.CartItem, error) {
	if cartID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Cannot update item not in the cart")
	}
	if _, err := u.cartRepo.FindByID(ctx, cartID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Cannot update item not in the cart")
		}
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Cannot update item not in the cart")
		}
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.CartID != cartID {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "Cannot update item not in the cart")
	}
	return item, nil
}

func (u *CartUsecase) buildCartOutput(ctx context.Context, cartID int64) (CartOutput, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]CartItemOutput, 0, len(items))
	var total int64
	for _, it := range items {
		name := ""
		if p, err := u.productRepo.FindByID(ctx, it.ProductID); err == nil {
			name = p.Name
		}

		outs = append(outs, CartItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
			ColorID:   it.ColorID,
			Name:      name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
		total += it.Price * it.Quantity
	}

	return CartOutput{CartID: cartID, Items: outs, Total: total}, nil
}
