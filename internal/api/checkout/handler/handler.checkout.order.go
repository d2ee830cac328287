// Package checkouthdl - Handler luồng checkout: mở phiên, chọn order
// type, resolve ngữ cảnh và submit đơn hàng.
package checkouthdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	authmodels "eyewear_commerce/internal/api/auth/models"
	basehdl "eyewear_commerce/internal/api/base/handler"
	"eyewear_commerce/internal/api/checkout/dto"
	models "eyewear_commerce/internal/api/checkout/models"
	checkoutsvc "eyewear_commerce/internal/api/checkout/service"
	"eyewear_commerce/internal/common"
	"eyewear_commerce/internal/global"
)

// CheckoutHandler ghép session store, resolver và submitter thành
// HTTP API của luồng checkout.
type CheckoutHandler struct {
	sessions  *checkoutsvc.SessionStore
	resolver  *checkoutsvc.Resolver
	submitter checkoutsvc.OrderSubmitter
}

// NewCheckoutHandler tạo handler với các collaborator được inject.
func NewCheckoutHandler(sessions *checkoutsvc.SessionStore, resolver *checkoutsvc.Resolver, submitter checkoutsvc.OrderSubmitter) *CheckoutHandler {
	return &CheckoutHandler{
		sessions:  sessions,
		resolver:  resolver,
		submitter: submitter,
	}
}

// actorFromContext dựng snapshot Actor từ user đã xác thực trong Locals.
func actorFromContext(c fiber.Ctx) (models.Actor, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return models.Actor{}, common.ErrUserNotFound
	}
	token, _ := c.Locals("session_token").(string)

	return models.Actor{
		ID:            user.ID.Hex(),
		Role:          user.Role,
		Phone:         user.Phone,
		PartyID:       user.PartyID,
		DistributorID: user.DistributorID,
		ZoneID:        user.ZoneID,
		SalesmanID:    user.SalesmanID,
		SessionToken:  token,
	}, nil
}

// HandleCreateSession POST /checkout/session — mở phiên checkout mới.
// Role không được hỗ trợ bị chặn ngay tại đây (fail closed).
func (h *CheckoutHandler) HandleCreateSession(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor, err := actorFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		role := checkoutsvc.ClassifyRole(actor.Role)
		if role == models.RoleUnsupported {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthRole,
				"Vai trò không được hỗ trợ đặt hàng",
				common.StatusForbidden,
				map[string]interface{}{"role": actor.Role}))
			return nil
		}

		session, err := h.sessions.Create()
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{
			"sessionId": session.ID,
			"role":      role,
		}, nil)
		return nil
	})
}

// HandleSelectOrderType POST /checkout/order-type — chọn order type.
// Selection của type cũ bị xóa, attempt đang bay bị vô hiệu.
func (h *CheckoutHandler) HandleSelectOrderType(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.SelectOrderTypeInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError,
				common.StatusBadRequest, err.Error()))
			return nil
		}

		session, err := h.sessions.Get(input.SessionID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		attempt := session.SelectOrderType(models.OrderType(input.OrderType))
		basehdl.HandleResponse(c, fiber.Map{
			"sessionId": session.ID,
			"orderType": session.OrderType(),
			"attempt":   attempt,
		}, nil)
		return nil
	})
}

// HandleResolve POST /checkout/resolve — resolve ngữ cảnh đơn hàng với
// selections hiện tại. Kết quả của attempt đã bị thay thế (người dùng
// đổi order type giữa chừng) bị bỏ, không trả về.
func (h *CheckoutHandler) HandleResolve(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.ResolveInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError,
				common.StatusBadRequest, err.Error()))
			return nil
		}

		actor, err := actorFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		session, err := h.sessions.Get(input.SessionID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		selections := models.Selections{
			SelectedPartyID: input.SelectedPartyID,
			SelectedEventID: input.SelectedEventID,
		}
		session.SetSelections(selections)

		attempt := session.NextAttempt()
		orderCtx, err := h.resolver.Resolve(c.Context(), actor, session.OrderType(), selections)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		// Guard attempt: kết quả thuộc attempt cũ không được ghi vào phiên
		if !session.IsAttemptCurrent(attempt) {
			basehdl.HandleResponse(c, nil, common.ErrAttemptSuperseded)
			return nil
		}

		basehdl.HandleResponse(c, orderCtx, nil)
		return nil
	})
}

// HandleSubmit POST /checkout/submit — resolve lại từ đầu với
// selections trong phiên (OrderContext không bao giờ persist hay tái
// dùng qua attempt), validate theo bảng field bắt buộc rồi gửi sang
// order service. Thành công thì đóng phiên.
func (h *CheckoutHandler) HandleSubmit(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.SubmitOrderInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError,
				common.StatusBadRequest, err.Error()))
			return nil
		}

		actor, err := actorFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		session, err := h.sessions.Get(input.SessionID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		attempt := session.NextAttempt()
		orderCtx, err := h.resolver.Resolve(c.Context(), actor, session.OrderType(), session.Selections())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if !session.IsAttemptCurrent(attempt) {
			basehdl.HandleResponse(c, nil, common.ErrAttemptSuperseded)
			return nil
		}

		// Validate cục bộ trước, fail thì không có network call nào
		if err := checkoutsvc.ValidateOrderContext(orderCtx); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		items := make([]checkoutsvc.OrderItem, 0, len(input.OrderItems))
		for _, item := range input.OrderItems {
			items = append(items, checkoutsvc.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		submission := checkoutsvc.BuildSubmission(orderCtx, items, input.OrderNotes, time.Now())
		result, err := h.submitter.Submit(c.Context(), submission)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		h.sessions.Close(session.ID)
		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
