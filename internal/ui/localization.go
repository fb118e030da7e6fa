package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyView              = "view"
	KeyLineNumbers       = "line_numbers"
	KeyShadedRows        = "shaded_rows"
	KeyCatalog           = "catalog"
	KeyGenerateSample    = "generate_sample"
	KeyClearCatalog      = "clear_catalog"
	KeyOriginalString    = "original_string"
	KeyTranslation       = "translation"
	KeyLine              = "line"
	KeyComment           = "comment"
	KeyFuzzy             = "fuzzy"
	KeyBookmark          = "bookmark"
	KeyNone              = "none"
	KeyApply             = "apply"
	KeyNoEntrySelected   = "no_entry_selected"
	KeyTotal             = "total"
	KeyUntranslated      = "untranslated"
	KeyInvalid           = "invalid"
	KeyFontSize          = "font_size"
	KeySampleSize        = "sample_size"
	KeyIconDirectory     = "icon_directory"
	KeyBrowse            = "browse"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyThemeFontDefault  = "theme_font_default"
	KeyOpenIconDirectory = "open_icon_directory"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// LanguageCodes returns the codes of the available languages in sorted order
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.GetAvailableLanguages()))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Catalog Editor",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyView:              "View",
		KeyLineNumbers:       "Line Numbers",
		KeyShadedRows:        "Shaded Rows",
		KeyCatalog:           "Catalog",
		KeyGenerateSample:    "Generate Sample",
		KeyClearCatalog:      "Clear",
		KeyOriginalString:    "Original string",
		KeyTranslation:       "Translation",
		KeyLine:              "Line",
		KeyComment:           "Comment",
		KeyFuzzy:             "Needs review",
		KeyBookmark:          "Bookmark",
		KeyNone:              "None",
		KeyApply:             "Apply",
		KeyNoEntrySelected:   "No entry selected",
		KeyTotal:             "Total",
		KeyUntranslated:      "Untranslated",
		KeyInvalid:           "Invalid",
		KeyFontSize:          "List Font Size",
		KeySampleSize:        "Sample Catalog Size",
		KeyIconDirectory:     "Status Icon Directory",
		KeyBrowse:            "Browse",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Icon directory changes apply after restart",
		KeyThemeFontDefault:  "0 = theme default",
		KeyOpenIconDirectory: "Open Icon Directory",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Редактор каталога",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyView:              "Вид",
		KeyLineNumbers:       "Номера строк",
		KeyShadedRows:        "Чередование строк",
		KeyCatalog:           "Каталог",
		KeyGenerateSample:    "Создать пример",
		KeyClearCatalog:      "Очистить",
		KeyOriginalString:    "Исходная строка",
		KeyTranslation:       "Перевод",
		KeyLine:              "Строка",
		KeyComment:           "Комментарий",
		KeyFuzzy:             "Требует проверки",
		KeyBookmark:          "Закладка",
		KeyNone:              "Нет",
		KeyApply:             "Применить",
		KeyNoEntrySelected:   "Запись не выбрана",
		KeyTotal:             "Всего",
		KeyUntranslated:      "Не переведено",
		KeyInvalid:           "Ошибки",
		KeyFontSize:          "Размер шрифта списка",
		KeySampleSize:        "Размер примера",
		KeyIconDirectory:     "Папка значков",
		KeyBrowse:            "Обзор",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Папка значков применяется после перезапуска",
		KeyThemeFontDefault:  "0 = размер темы",
		KeyOpenIconDirectory: "Открыть папку значков",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Editor de Catálogo",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyView:              "Exibir",
		KeyLineNumbers:       "Números de Linha",
		KeyShadedRows:        "Linhas Sombreadas",
		KeyCatalog:           "Catálogo",
		KeyGenerateSample:    "Gerar Exemplo",
		KeyClearCatalog:      "Limpar",
		KeyOriginalString:    "Texto original",
		KeyTranslation:       "Tradução",
		KeyLine:              "Linha",
		KeyComment:           "Comentário",
		KeyFuzzy:             "Precisa revisão",
		KeyBookmark:          "Marcador",
		KeyNone:              "Nenhum",
		KeyApply:             "Aplicar",
		KeyNoEntrySelected:   "Nenhuma entrada selecionada",
		KeyTotal:             "Total",
		KeyUntranslated:      "Não traduzidas",
		KeyInvalid:           "Inválidas",
		KeyFontSize:          "Tamanho da Fonte da Lista",
		KeySampleSize:        "Tamanho do Exemplo",
		KeyIconDirectory:     "Diretório de Ícones",
		KeyBrowse:            "Navegar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "O diretório de ícones vale após reiniciar",
		KeyThemeFontDefault:  "0 = padrão do tema",
		KeyOpenIconDirectory: "Abrir Diretório de Ícones",
	}
}
