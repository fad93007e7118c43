package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/buildledger/backend/internal/domain/entity"
	"github.com/buildledger/backend/internal/integration/persistence/model"
)

// Setup steps

func (t *testContext) aUserExistsWithPhoneAndPassword(phone, password string) error {
	user := entity.NewUser(phone, "Test", "User", hashPassword(password))
	t.currentUserID = user.ID
	return t.db.DbConn.Create(model.UserFromEntity(user)).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs ensures the user exists and issues a token pair signed with
// the server's test secret.
func (t *testContext) iAmLoggedInAs(phone string) error {
	var userModel model.UserModel
	err := t.db.DbConn.Where("phone = ?", phone).First(&userModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := t.aUserExistsWithPhoneAndPassword(phone, "DefaultPass123!"); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		t.currentUserID = userModel.ID
	}

	t.accessToken, err = signToken(t.currentUserID, phone, "access", 15*time.Minute)
	if err != nil {
		return err
	}
	t.refreshToken, err = signToken(t.currentUserID, phone, "refresh", 7*24*time.Hour)
	return err
}

func signToken(userID uuid.UUID, phone, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"phone":      phone,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "buildledger",
		"sub":        userID.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) aCategoryExists(name string) error {
	category := entity.NewCategory(name, "")
	t.currentCategoryID = category.ID
	return t.db.DbConn.Create(model.CategoryFromEntity(category)).Error
}

func (t *testContext) aProjectExists(name string) error {
	if t.currentUserID == uuid.Nil {
		if err := t.aUserExistsWithPhoneAndPassword("+79160000001", "DefaultPass123!"); err != nil {
			return err
		}
	}
	project := entity.NewProject(name, "", t.currentUserID)
	t.currentProjectID = project.ID
	return t.db.DbConn.Create(model.ProjectFromEntity(project)).Error
}

func (t *testContext) aSiteExistsInTheProject(name string) error {
	site := entity.NewSite(t.currentProjectID, name, "")
	t.currentSiteID = site.ID
	return t.db.DbConn.Create(model.SiteFromEntity(site)).Error
}

func (t *testContext) aStageExistsWithOrder(name string, order int) error {
	stage := entity.NewStage(t.currentSiteID, order, name)
	t.currentStageID = stage.ID
	return t.db.DbConn.Create(model.StageFromEntity(stage)).Error
}

func (t *testContext) aDraftEstimateExistsForTheStage() error {
	estimate := entity.NewEstimate(t.currentStageID)
	t.currentEstimateID = estimate.ID
	return t.db.DbConn.Create(model.EstimateFromEntity(estimate)).Error
}

func (t *testContext) aMaterialTypeExists(name string) error {
	materialType := entity.NewMaterialType(name, "")
	m := model.MaterialTypeFromEntity(materialType)
	if err := t.db.DbConn.Create(m).Error; err != nil {
		return err
	}
	t.lastID = materialType.ID
	return nil
}

func (t *testContext) aPriceItemExists(name, price, unit string) error {
	pricePerUnit, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", price, err)
	}

	// Price items reference a type; reuse the last created material type or
	// make one on the fly.
	typeID := t.lastID
	if typeID == uuid.Nil {
		if err := t.aMaterialTypeExists("General"); err != nil {
			return err
		}
		typeID = t.lastID
	}

	priceItem := entity.NewPriceItem(name, entity.PriceItemKindMaterial, typeID, "", unit, pricePerUnit)
	t.currentPriceID = priceItem.ID
	return t.db.DbConn.Create(model.PriceItemFromEntity(priceItem)).Error
}

func (t *testContext) anEstimateItemExistsWithMarkup(description, quantity, unitPrice string, markup int) error {
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}
	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return fmt.Errorf("invalid unit price %q: %w", unitPrice, err)
	}

	item := entity.NewEstimateItem(t.currentEstimateID, nil, description, qty, price,
		entity.IncomeTypeMarkup, decimal.NewFromInt(int64(markup)), true)
	t.currentItemID = item.ID
	return t.db.DbConn.Create(model.EstimateItemFromEntity(item)).Error
}

func (t *testContext) anExpenseAttachedToExists(amount, target string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	var attachment entity.Attachment
	switch target {
	case "stage":
		attachment = entity.AttachToStage(t.currentStageID)
	case "estimate":
		attachment = entity.AttachToEstimate(t.currentEstimateID)
	case "item":
		attachment = entity.AttachToItem(t.currentItemID)
	}

	if t.currentCategoryID == uuid.Nil {
		if err := t.aCategoryExists("Default"); err != nil {
			return err
		}
	}

	txn := entity.NewTransaction(value, entity.TransactionTypeExpense,
		t.currentCategoryID, nil, "", time.Now().UTC(), attachment)
	return t.db.DbConn.Create(model.TransactionFromEntity(txn)).Error
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	replacements := map[string]string{
		"{{access_token}}":  t.accessToken,
		"{{refresh_token}}": t.refreshToken,
		"{{user_id}}":       t.currentUserID.String(),
		"{{category_id}}":   t.currentCategoryID.String(),
		"{{project_id}}":    t.currentProjectID.String(),
		"{{site_id}}":       t.currentSiteID.String(),
		"{{stage_id}}":      t.currentStageID.String(),
		"{{estimate_id}}":   t.currentEstimateID.String(),
		"{{item_id}}":       t.currentItemID.String(),
		"{{price_item_id}}": t.currentPriceID.String(),
		"{{last_id}}":       t.lastID.String(),
	}
	for placeholder, value := range replacements {
		content = strings.ReplaceAll(content, placeholder, value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var responseBody map[string]any
	if err := json.Unmarshal(raw, &responseBody); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}

	return nil
}

// Response assertion steps

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

// Database assertion steps

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue walks a dot-separated path through a decoded JSON value,
// treating numeric segments as array indexes.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
