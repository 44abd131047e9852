package services

import (
	"context"
	"errors"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/models"
)

func (suite *ServiceTestSuite) TestListOrdersRequiresValidSession() {
	user := suite.createUser("ada@example.com")
	category := suite.createCategory("hosting", 1)
	product := suite.createProduct(category, "professional", "49.00", true, 1)
	suite.createOrder(user, models.OrderStatusCompleted, "49.00", 1, product)
	credential := suite.signIn(user)

	svc := NewOrderService(suite.db, suite.sessions, nil)

	_, err := svc.ListOrdersForSession(suite.ctx, "")
	suite.True(apperrors.Is(err, apperrors.CodeUnauthorized))

	_, err = svc.ListOrdersForSession(suite.ctx, "garbage")
	suite.True(apperrors.Is(err, apperrors.CodeUnauthorized))

	suite.clock = suite.clock.Add(testSessionConfig.TTL)
	_, err = svc.ListOrdersForSession(suite.ctx, credential)
	suite.True(apperrors.Is(err, apperrors.CodeUnauthorized), "expired session must be rejected even though orders exist")
}

func (suite *ServiceTestSuite) TestListOrdersReturnsOwnOrdersOldestFirst() {
	ada := suite.createUser("ada@example.com")
	bob := suite.createUser("bob@example.com")
	category := suite.createCategory("hosting", 1)
	pro := suite.createProduct(category, "professional", "49.00", true, 1)
	ent := suite.createProduct(category, "enterprise", "199.00", true, 2)

	later := suite.createOrder(ada, models.OrderStatusCompleted, "199.00", 5, ent)
	earlier := suite.createOrder(ada, models.OrderStatusPending, "98.00", 1, pro, pro)
	suite.createOrder(bob, models.OrderStatusCompleted, "49.00", 2, pro)

	orders, err := NewOrderService(suite.db, suite.sessions, nil).ListOrdersForSession(suite.ctx, suite.signIn(ada))
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	suite.Equal(earlier.ID, orders[0].ID)
	suite.Equal(later.ID, orders[1].ID)
	suite.Len(orders[0].Items, 2)
	suite.Len(orders[1].Items, 1)
	for _, order := range orders {
		suite.Equal(ada.ID, order.UserID)
		for _, item := range order.Items {
			suite.Equal(order.ID, item.OrderID)
		}
	}
}

func (suite *ServiceTestSuite) TestListOrdersEmptyHistory() {
	user := suite.createUser("new@example.com")

	orders, err := NewOrderService(suite.db, suite.sessions, nil).ListOrdersForSession(suite.ctx, suite.signIn(user))
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *ServiceTestSuite) TestOrderItemsKeepSnapshotAfterCatalogChange() {
	user := suite.createUser("ada@example.com")
	category := suite.createCategory("hosting", 1)
	product := suite.createProduct(category, "professional", "49.00", true, 1)
	suite.createOrder(user, models.OrderStatusCompleted, "49.00", 1, product)

	suite.Require().NoError(suite.db.Model(product).Updates(map[string]interface{}{
		"name":  "Professional Hosting v2",
		"price": models.MustMoney("79.00"),
	}).Error)

	orders, err := NewOrderService(suite.db, nil, nil).ListOrdersForUser(suite.ctx, user.ID)
	suite.Require().NoError(err)
	item := orders[0].Items[0]
	suite.Equal("professional", item.ProductName)
	suite.Equal("49.00", item.Price.String())
}

// The total is stored independently of the items; nothing reconciles them.
func (suite *ServiceTestSuite) TestOrderTotalIsNotDerivedFromItems() {
	user := suite.createUser("ada@example.com")
	category := suite.createCategory("hosting", 1)
	product := suite.createProduct(category, "professional", "49.00", true, 1)
	suite.createOrder(user, models.OrderStatusCompleted, "40.00", 1, product)

	orders, err := NewOrderService(suite.db, nil, nil).ListOrdersForUser(suite.ctx, user.ID)
	suite.Require().NoError(err)

	order := orders[0]
	suite.Equal("40.00", order.TotalAmount.String())
	suite.Equal("49.00", order.Items[0].Subtotal().String())
}

func (suite *ServiceTestSuite) TestListOrdersFailsWhenItemsCannotBeFetched() {
	user := suite.createUser("ada@example.com")
	suite.createOrder(user, models.OrderStatusPending, "0.00", 1)
	suite.createOrder(user, models.OrderStatusPending, "0.00", 2)
	suite.Require().NoError(suite.db.Migrator().DropTable(&models.OrderItem{}))

	resolver := &fakeResolver{credential: "cred", user: user}
	orders, err := NewOrderService(suite.db, resolver, nil).ListOrdersForSession(suite.ctx, "cred")
	suite.Nil(orders)
	suite.True(apperrors.Is(err, apperrors.CodeInternal))
}

func (suite *ServiceTestSuite) TestListOrdersPropagatesSessionStoreFailure() {
	resolver := &fakeResolver{err: apperrors.StoreError(errors.New("connection reset"), "load session")}

	_, err := NewOrderService(suite.db, resolver, nil).ListOrdersForSession(suite.ctx, "cred")
	suite.True(apperrors.Is(err, apperrors.CodeInternal))
}

func (suite *ServiceTestSuite) TestListOrdersHonoursCancellation() {
	user := suite.createUser("ada@example.com")
	suite.createOrder(user, models.OrderStatusPending, "0.00", 1)

	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := NewOrderService(suite.db, nil, nil).ListOrdersForUser(ctx, user.ID)
	suite.Error(err)
}
