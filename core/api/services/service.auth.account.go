package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"
	"food_bridge/core/utility"
)

// AccountService là cấu trúc chứa các phương thức liên quan đến tài khoản truy cập API.
// Tài khoản do staff cấp phát kèm bearer token; không có flow đăng nhập tự phục vụ,
// danh tính được xác minh ở phía đối tác trước khi staff tạo tài khoản.
type AccountService struct {
	*BaseServiceMongoImpl[models.Account]
}

// NewAccountService tạo mới AccountService
func NewAccountService() (*AccountService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AuthAccounts)
	if !exist {
		return nil, fmt.Errorf("failed to get auth_accounts collection: %v", common.ErrNotFound)
	}

	return &AccountService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Account](collection),
	}, nil
}

// Create tạo tài khoản mới từ input và cấp token ngay.
// Role store/volunteer bắt buộc có ActorID trỏ tới hồ sơ tồn tại trong collection tương ứng;
// role staff không gắn ActorID.
func (s *AccountService) Create(ctx context.Context, input *dto.AccountCreateInput) (*models.Account, error) {
	account := models.Account{
		Email: input.Email,
		Name:  input.Name,
		Role:  input.Role,
	}

	if input.Role == models.RoleStaff {
		if input.ActorID != "" {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				"Tài khoản staff không gắn actorId",
				common.StatusBadRequest,
				nil,
			)
		}
	} else {
		if input.ActorID == "" {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Tài khoản role %s bắt buộc có actorId trỏ tới hồ sơ tương ứng", input.Role),
				common.StatusBadRequest,
				nil,
			)
		}
		actorID, err := primitive.ObjectIDFromHex(input.ActorID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		if err := s.validateActorExists(ctx, input.Role, actorID); err != nil {
			return nil, err
		}
		account.ActorID = &actorID
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, account)
	if err != nil {
		return nil, err
	}

	// Cấp token ngay khi tạo để staff bàn giao cho đối tác
	withToken, err := s.IssueToken(ctx, created.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": created.ID.Hex(),
			"error":      err.Error(),
		}).Error("Create: Tạo tài khoản thành công nhưng cấp token thất bại")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": withToken.ID.Hex(),
		"role":       withToken.Role,
	}).Info("Create: Đã tạo tài khoản và cấp token")

	return withToken, nil
}

// validateActorExists kiểm tra hồ sơ store/volunteer mà tài khoản trỏ tới có tồn tại không
func (s *AccountService) validateActorExists(ctx context.Context, role string, actorID primitive.ObjectID) error {
	var colName string
	switch role {
	case models.RoleStore:
		colName = global.MongoDB_ColNames.Stores
	case models.RoleVolunteer:
		colName = global.MongoDB_ColNames.Volunteers
	default:
		return common.ErrRoleNotAllowed
	}

	collection, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không tìm thấy collection '%s'", colName),
			common.StatusInternalServerError,
			nil,
		)
	}

	count, err := collection.CountDocuments(ctx, bson.M{"_id": actorID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Không tìm thấy hồ sơ %s với id %s", role, actorID.Hex()),
			common.StatusNotFound,
			nil,
		)
	}
	return nil
}

// IssueToken tạo JWT token mới cho tài khoản và lưu vào document.
// Token cũ (nếu có) mất hiệu lực ngay vì middleware tra tài khoản theo token hiện tại.
func (s *AccountService) IssueToken(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()

	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		accountID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		return nil, err
	}

	updateData := &UpdateData{
		Set: map[string]interface{}{
			"token": tokenMap["token"],
		},
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, accountID, updateData)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// RotateToken thu hồi token hiện tại và cấp token mới (staff gọi khi token lộ hoặc bàn giao lại)
func (s *AccountService) RotateToken(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error) {
	account, err := s.IssueToken(ctx, accountID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID.Hex(),
	}).Info("RotateToken: Đã cấp token mới")

	return account, nil
}

// FindByToken tra tài khoản theo bearer token (dùng bởi middleware auth)
func (s *AccountService) FindByToken(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, common.ErrTokenMissing
	}

	account, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	return &account, nil
}
