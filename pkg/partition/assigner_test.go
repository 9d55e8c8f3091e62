package partition

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxa/internal/models"
)

func assignerConfig(itemCount, batchSize int) Config {
	return Config{
		ItemCount:          itemCount,
		CategoryCount:      5,
		SampleSize:         itemCount,
		StepCategoryAmount: 5,
		BatchSize:          batchSize,
		MaxDepth:           10,
	}
}

func fixedCategories(names ...string) []*models.Category {
	cats := make([]*models.Category, len(names))
	for i, n := range names {
		cats[i] = models.NewCategory(n, n+" description")
	}
	return cats
}

func TestAssigner_BatchPartitionCompleteness(t *testing.T) {
	names := []string{"A", "B"}
	oracle := &scriptedOracle{assignFor: roundRobin(names)}
	oracle.level = 1 // pretend one proposal already happened
	assigner := NewAssigner(oracle, "", "")

	items := makeItems(25)
	_, err := assigner.Assign(context.Background(), items, fixedCategories(names...), assignerConfig(25, 10))
	require.NoError(t, err)

	// Batches concatenated in order must reconstruct the input exactly.
	require.Len(t, oracle.assignUsers, 3)
	var reconstructed []string
	batchSizes := []int{}
	for _, user := range oracle.assignUsers {
		var batch []string
		require.NoError(t, json.Unmarshal([]byte(user), &batch))
		batchSizes = append(batchSizes, len(batch))
		reconstructed = append(reconstructed, batch...)
	}
	assert.Equal(t, []int{10, 10, 5}, batchSizes, "last batch may be shorter")
	assert.Equal(t, items, reconstructed)
}

func TestAssigner_PopulatesByExactName(t *testing.T) {
	names := []string{"A", "B"}
	oracle := &scriptedOracle{assignFor: roundRobin(names)}
	oracle.level = 1
	assigner := NewAssigner(oracle, "", "")

	categories := fixedCategories(names...)
	items := makeItems(6)
	unassigned, err := assigner.Assign(context.Background(), items, categories, assignerConfig(6, 10))

	require.NoError(t, err)
	assert.Nil(t, unassigned)
	assert.Equal(t, []string{"item-01", "item-03", "item-05"}, categories[0].Items)
	assert.Equal(t, []string{"item-02", "item-04", "item-06"}, categories[1].Items)
}

func TestAssigner_SystemPromptListsCategories(t *testing.T) {
	oracle := &scriptedOracle{assignFor: roundRobin([]string{"Fruit"})}
	oracle.level = 1
	assigner := NewAssigner(oracle, "", "")

	categories := fixedCategories("Fruit", "Dairy")
	_, err := assigner.Assign(context.Background(), makeItems(2), categories, assignerConfig(2, 10))
	require.NoError(t, err)

	require.Len(t, oracle.assignSystems, 1)
	assert.Contains(t, oracle.assignSystems[0], "Fruit: Fruit description")
	assert.Contains(t, oracle.assignSystems[0], "Dairy: Dairy description")
}

func TestAssigner_UnmatchedNameDropped(t *testing.T) {
	// Oracle invents a category name the list doesn't contain.
	oracle := &scriptedOracle{assignFor: func(level int, item string) string {
		if item == "item-02" {
			return "Nonexistent"
		}
		return "A"
	}}
	oracle.level = 1
	assigner := NewAssigner(oracle, "", "") // no sink: warn and drop

	categories := fixedCategories("A")
	unassigned, err := assigner.Assign(context.Background(), makeItems(3), categories, assignerConfig(3, 10))

	require.NoError(t, err)
	assert.Nil(t, unassigned)
	assert.Equal(t, []string{"item-01", "item-03"}, categories[0].Items, "the unmatched item is lost")
}

func TestAssigner_UnmatchedNameRoutedToSink(t *testing.T) {
	oracle := &scriptedOracle{assignFor: func(level int, item string) string {
		if item == "item-02" {
			return "Nonexistent"
		}
		return "A"
	}}
	oracle.level = 1
	assigner := NewAssigner(oracle, "Unassigned", "")

	categories := fixedCategories("A")
	unassigned, err := assigner.Assign(context.Background(), makeItems(3), categories, assignerConfig(3, 10))

	require.NoError(t, err)
	require.NotNil(t, unassigned)
	assert.Equal(t, "Unassigned", unassigned.Name)
	assert.Equal(t, []string{"item-02"}, unassigned.Items)
	assert.Equal(t, []string{"item-01", "item-03"}, categories[0].Items)
}

func TestAssigner_OmittedItemsSwept(t *testing.T) {
	// Oracle silently skips two items in its replies.
	oracle := &scriptedOracle{assignFor: func(level int, item string) string {
		if item == "item-01" || item == "item-04" {
			return ""
		}
		return "A"
	}}
	oracle.level = 1
	assigner := NewAssigner(oracle, "Unassigned", "")

	categories := fixedCategories("A")
	unassigned, err := assigner.Assign(context.Background(), makeItems(5), categories, assignerConfig(5, 2))

	require.NoError(t, err)
	require.NotNil(t, unassigned)
	assert.Equal(t, []string{"item-01", "item-04"}, unassigned.Items, "swept in input order")
	assert.Equal(t, []string{"item-02", "item-03", "item-05"}, categories[0].Items)
}

func TestAssigner_DuplicateAssignmentIgnored(t *testing.T) {
	reply, _ := json.Marshal(map[string]interface{}{
		"assignments": []map[string]string{
			{"item": "item-01", "categoryName": "A"},
			{"item": "item-01", "categoryName": "B"},
			{"item": "item-02", "categoryName": "B"},
		},
	})
	oracle := &scriptedOracle{rawAssignment: reply}
	oracle.level = 1
	assigner := NewAssigner(oracle, "", "")

	categories := fixedCategories("A", "B")
	_, err := assigner.Assign(context.Background(), makeItems(2), categories, assignerConfig(2, 10))

	require.NoError(t, err)
	assert.Equal(t, []string{"item-01"}, categories[0].Items)
	assert.Equal(t, []string{"item-02"}, categories[1].Items, "second assignment of item-01 is ignored")
}

func TestAssigner_SchemaMismatch(t *testing.T) {
	testCases := []struct {
		name  string
		reply string
	}{
		{name: "Missing assignments key", reply: `{"result": []}`},
		{name: "Wrong type", reply: `{"assignments": 7}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			oracle := &scriptedOracle{rawAssignment: json.RawMessage(tc.reply)}
			oracle.level = 1
			assigner := NewAssigner(oracle, "", "")

			_, err := assigner.Assign(context.Background(), makeItems(2), fixedCategories("A"), assignerConfig(2, 10))
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrSchemaMismatch)
		})
	}
}
