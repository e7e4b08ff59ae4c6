// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taafevision/taafe-go/internal/auth"
)

// Default admin credentials, intended for first login only.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Seed inserts the default admin account and demo content. Each entity
// group is seeded only when its table is empty, so repeated startups
// never duplicate rows and admin edits are never overwritten.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	if err := seedAdmin(ctx, queries); err != nil {
		return err
	}
	if err := seedProjects(ctx, queries); err != nil {
		return err
	}
	if err := seedFilms(ctx, queries); err != nil {
		return err
	}
	if err := seedPartners(ctx, queries); err != nil {
		return err
	}
	if err := seedArticles(ctx, queries); err != nil {
		return err
	}

	return nil
}

func seedAdmin(ctx context.Context, q *Queries) error {
	_, err := q.GetUserByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := q.CreateUser(ctx, CreateUserParams{
		Username:     DefaultAdminUsername,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"username", user.Username,
	)
	return nil
}

func seedProjects(ctx context.Context, q *Queries) error {
	n, err := q.CountProjects(ctx)
	if err != nil {
		return fmt.Errorf("counting projects: %w", err)
	}
	if n > 0 {
		return nil
	}

	projects := []CreateProjectParams{
		{
			Title:       "Elles se réalisent",
			Description: "Formation de femmes réalisatrices aboutissant à la production de courts-métrages porteurs de messages sociaux et de sensibilisation aux droits des femmes.",
			ImageURL:    "/images/community-engagement-1.jpg",
			Date:        strptr("2023-2024"),
		},
		{
			Title:       "De l'idée au court métrage",
			Description: "Incubation complète de projets filmiques féminins : écriture, production et diffusion de films sans stéréotypes abordant les violences basées sur le genre.",
			ImageURL:    "/images/community-screening.jpg",
			Date:        strptr("2024"),
		},
		{
			Title:       "Projections communautaires",
			Description: "Projections suivies de débats dans les villages, quartiers et écoles pour sensibiliser aux droits des femmes et engager les communautés.",
			ImageURL:    "/images/partners-1.jpg",
			Date:        strptr("2024"),
		},
	}

	for _, p := range projects {
		if _, err := q.CreateProject(ctx, p); err != nil {
			return fmt.Errorf("seeding project %q: %w", p.Title, err)
		}
	}

	slog.Info("seeded demo projects", "count", len(projects))
	return nil
}

func seedFilms(ctx context.Context, q *Queries) error {
	n, err := q.CountFilms(ctx)
	if err != nil {
		return fmt.Errorf("counting films: %w", err)
	}
	if n > 0 {
		return nil
	}

	films := []CreateFilmParams{
		{
			Title:    "A TOUT PRIX",
			Director: "Maimouna OUEDRAOGO",
			Synopsis: "Kilayé et Mayô, couple jeune et complice, vivent paisiblement à Ouagadougou avec leur fille de huit ans, Barkima. Un matin, la quiétude du foyer est troublée par la visite inopinée de Yaba, la mère de Kilayé. Mayô surprend alors une discussion alarmante : il est question d'exciser Barkima. Résolue et elle-même survivante de cette pratique dangereuse, elle tente de s'opposer à cette décision. La tension monte, les convictions s'entrechoquent. Arrivera-t-elle à sauver sa fille du couteau de l'exciseuse ?",
			Year:     2024,
			ImageURL: "https://images.unsplash.com/photo-1485846234645-a62644f84728?auto=format&fit=crop&q=80",
			VideoURL: strptr("#"),
		},
		{
			Title:    "AFFRANCHIE",
			Director: "Naima Maguilatou TRAORE",
			Synopsis: "Après son mariage, Dia, âgée de 23 ans et déléguée des étudiants.tes de son Université est encore sous contraceptif, situation qui déplait à Maman, sa belle-mère. Elle ambitionne bâtir une carrière avant d'envisager d'avoir des enfants. La matriarche, offusquée par le choix de Dia exige d'elle une grossesse avant les 15 jours de confinement traditionnel de la nouvelle mariée. Dia restera-t-elle sur sa position ou cédera-t-elle à la pression de sa belle-mère ?",
			Year:     2024,
			ImageURL: "/images/affranchie.jpg",
			VideoURL: strptr("#"),
		},
		{
			Title:    "TERMINUS",
			Director: "Salimata OUEDRAOGO",
			Synopsis: "Aicha, une adolescente vit dans une zone à haut défi sécuritaire. Pour s'assurer une bonne couverture sociale, son père lui impose un mariage auquel elle s'oppose farouchement. Elle migre en ville où elle trouve un emploi d'aide-ménagère. Cependant son calvaire est sans fin car le mari de sa patronne la harcèle et tente de la violer. Va-t-elle céder ou être contrainte de fuir à nouveau ?",
			Year:     2024,
			ImageURL: "/images/terminus.jpg",
			VideoURL: strptr("#"),
		},
		{
			Title:    "LE POIDS DU DESHONNEUR",
			Director: "Maimouna LENGLENGUE",
			Synopsis: "Nafi, une jeune mère constamment battue par son mari, décide de quitter le foyer. Elle est renvoyée par sa famille auprès de qui elle cherche refuge et fait face à l'inaction des services sociaux. Elle trouve bientôt un emploi et réorganise sa vie. Cependant, menacée de bannissement, Nafi retourne auprès de son bourreau. Ce dernier récidive. Cette fois, leur voisine, longtemps témoin silencieuse de ces violences décide d'agir. Parviendra-t-elle à sauver Nafi ?",
			Year:     2024,
			ImageURL: "https://images.unsplash.com/photo-1485846234645-a62644f84728?auto=format&fit=crop&q=80",
			VideoURL: strptr("#"),
		},
		{
			Title:    "KANU",
			Director: "Djata OUATTARA",
			Synopsis: "Désœuvré et obsédé par l'idée d'offrir une meilleure vie à sa mère rongée par un passé douloureux et secret, Sié, un jeune homme intègre les rangs terroristes. Sous la direction de Bella, son mentor, il s'apprête à perpétrer son premier attentat. Mais avant, il fait la connaissance de Yé, une jeune citadine rescapée d'une attaque terroriste et qui a décidé de s'engager pour la paix. Kanu, le film montre la puissance de l'amour maternel et l'importance de l'engagement citoyen des femmes pour la préservation de la paix.",
			Year:     2024,
			ImageURL: "https://images.unsplash.com/photo-1485846234645-a62644f84728?auto=format&fit=crop&q=80",
			VideoURL: strptr("#"),
		},
		{
			Title:    "AU PIED DU MUR",
			Director: "Délia E. Y. IDO",
			Synopsis: "Marietou est une jeune fille de 17 ans, qui vient d'obtenir une bourse d'étude étrangère. Mais ses rêves tombent à l'eau car son père a décidé de la donner en mariage à son riche ami. Marietou se retrouve face à un dilemme : obéir à son père ou poursuivre ses rêves. Elle décide de s'enfuir. Parviendra-t-elle à échapper à ce destin tracé pour elle ?",
			Year:     2024,
			ImageURL: "/images/au-pied-du-mur.jpg",
			VideoURL: strptr("#"),
		},
		{
			Title:    "INCOMPRISE",
			Director: "Cathérine GOLO",
			Synopsis: "Fatim, une jeune fille victime de viol et enceinte est contrainte d'épouser son bourreau en guise de réparation du déshonneur faite à sa famille. Dans son foyer, elle subit beaucoup de violences psychologique et physique. Avec le soutien de sa cousine, Fatim décide de se prendre en main.",
			Year:     2024,
			ImageURL: "/images/incomprise.jpg",
			VideoURL: strptr("#"),
		},
		{
			Title:    "MANIPULATIONS",
			Director: "Assita SOMA",
			Synopsis: "Kadi, jeune femme d'une trentaine d'années, titulaire d'un master II en Droit, vit avec son mari Abdoul et ses deux enfants. L'homme de sa vie se montre attentionné et très amoureux de son épouse si bien qu'il la convainc de limiter ses sorties et se propose de lui faire toutes ses courses. Kady est tellement reconnaissante de cet amour et de cette bienveillance qu'elle implique son mari dans tout ce qu'elle fait. Mais derrière cet amour se cache une manipulation pernicieuse. Kadi saura-t-elle se libérer ?",
			Year:     2024,
			ImageURL: "/images/manipulations.jpg",
			VideoURL: strptr("#"),
		},
		{
			Title:    "AU-DELA DE L'AMOUR",
			Director: "Ekua Zinogo BANCE",
			Synopsis: "Fatigué et révolté de l'humiliation que son père lui inflige au quotidien du fait de sa condition de sans emploi, Madi se saisit de la première opportunité de travail qui lui tombe sous la main sans réfléchir. Au fil du temps, sa mère, qui ne reconnait plus son fils, exprime ses inquiétudes à son mari qui fait la sourde oreille. Quand la mère de Madi découvre enfin ce qu'il fait réellement, elle décide d'agir pour sauver son fils.",
			Year:     2024,
			ImageURL: "/images/au-dela-de-lamour.png",
			VideoURL: strptr("#"),
		},
		{
			Title:    "LES VOISINS",
			Director: "Edith Martine TRAORE",
			Synopsis: "Maya, une jeune dame s'installe nouvellement dans un quartier de Ouagadougou avec son mari Marcus et leur fille Maelys. Ses voisins, chefs d'ateliers, ont la fâcheuse habitude de bruler les ordures, ce qui fragilise considérablement l'état de santé de sa fille qui souffre d'asthme. Inquiète après la première interpellation inféconde de Marcus, Maya tente de trouver une solution pacifique pour préserver la santé de sa fille et le vivre ensemble.",
			Year:     2024,
			ImageURL: "/images/mes-voisins.jpg",
			VideoURL: strptr("#"),
		},
		{
			Title:    "LES INSEPARABLES",
			Director: "Djeneba LY",
			Synopsis: "Les familles Cissé et Bazongo, ont toujours entretenu de bonnes relations de voisinage jusqu'au jour où Ladji Cissé, désormais respectueux des préceptes d'un nouveau guide spirituel, s'oppose farouchement à la grande amitié qui existe entre sa fille Habiba Cissé et Esther, la fille des Bazongo. Ladji Cissé, en plus d'interdire l'accès à sa cour à la famille Bazongo, les harcèle quotidiennement. Une histoire de tolérance religieuse et d'amitié par-delà les barrières.",
			Year:     2024,
			ImageURL: "https://images.unsplash.com/photo-1485846234645-a62644f84728?auto=format&fit=crop&q=80",
			VideoURL: strptr("#"),
		},
		{
			Title:    "JUGE T. BLANCHE",
			Director: "LAGUEMPEDO Barkima Nafissatou",
			Synopsis: "Juge T. Blanche, une femme trentenaire se rend coupable du meurtre du Général Juste TAMALEBO, son père. Tenue par un pacte de silence scellé entre sa défunte mère Aline et elle, Blanche est contrainte de garder secrètes les faits de viols incestueux dont elle a été victime durant son enfance. Un film poignant sur le silence, le traumatisme et la justice.",
			Year:     2024,
			ImageURL: "/images/juge-blanche.jpg",
			VideoURL: strptr("#"),
		},
	}

	for _, f := range films {
		if _, err := q.CreateFilm(ctx, f); err != nil {
			return fmt.Errorf("seeding film %q: %w", f.Title, err)
		}
	}

	slog.Info("seeded demo films", "count", len(films))
	return nil
}

func seedPartners(ctx context.Context, q *Queries) error {
	n, err := q.CountPartners(ctx)
	if err != nil {
		return fmt.Errorf("counting partners: %w", err)
	}
	if n > 0 {
		return nil
	}

	partners := []CreatePartnerParams{
		{
			Name:    "FESPACO",
			LogoURL: "/images/logo.jpg",
			Website: strptr("https://fespaco.org"),
		},
		{
			Name:    "Union Européenne",
			LogoURL: "https://images.unsplash.com/photo-1611273426858-450d8e3c9fce?auto=format&fit=crop&q=80",
			Website: strptr("https://europa.eu"),
		},
		{
			Name:    "FDCT / PAIC-GC",
			LogoURL: "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80",
		},
		{
			Name:    "Equipop",
			LogoURL: "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80",
		},
		{
			Name:    "Foundation for a Just Society (FJS)",
			LogoURL: "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80",
		},
		{
			Name:    "Agence Burkinabe de la Cinematographie et de l'Audiovisuel (ABCA)",
			LogoURL: "https://images.unsplash.com/photo-1485846234645-a62644f84728?auto=format&fit=crop&q=80",
		},
	}

	for _, p := range partners {
		if _, err := q.CreatePartner(ctx, p); err != nil {
			return fmt.Errorf("seeding partner %q: %w", p.Name, err)
		}
	}

	slog.Info("seeded demo partners", "count", len(partners))
	return nil
}

func seedArticles(ctx context.Context, q *Queries) error {
	n, err := q.CountArticles(ctx)
	if err != nil {
		return fmt.Errorf("counting articles: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now()
	articles := []CreateArticleParams{
		{
			Title:     "Lancement du projet 'Elles se réalisent' 2024",
			Content:   "Nous sommes fières d'annoncer le lancement de notre programme phare pour l'année 2024. Ce programme sélectionnera 10 femmes réalisatrices pour une formation complète et une aide à la production de leurs courts-métrages.",
			Category:  "news",
			ImageURL:  strptr("https://images.unsplash.com/photo-1517457373614-b7152f800fd1?auto=format&fit=crop&q=80"),
			CreatedAt: now,
		},
		{
			Title:     "Cinéma et droits des femmes au FESPACO 2024",
			Content:   "Taafé Vision sera présente au FESPACO 2024 avec un stand dédié à la promotion des femmes cinéastes. Rejoignez-nous pour des panels, des pitchs et des projections spéciales.",
			Category:  "event",
			ImageURL:  strptr("https://images.unsplash.com/photo-1540575467063-178f50002c4b?auto=format&fit=crop&q=80"),
			CreatedAt: now,
		},
		{
			Title:     "Projection-débat : 'Violences et Résilience'",
			Content:   "Nous organisons une série de projections-débats dans les communes de Ouagadougou pour sensibiliser aux violences basées sur le genre. Venez découvrir nos derniers courts-métrages et participer au débat.",
			Category:  "event",
			ImageURL:  strptr("https://images.unsplash.com/photo-1521737711867-e3b97375f902?auto=format&fit=crop&q=80"),
			CreatedAt: now,
		},
		{
			Title:     "Nos films primés au festival d'Ouagadougou",
			Content:   "Trois de nos productions ont été sélectionnées et récompensées au festival du cinéma d'Ouagadougou. Bravo à toutes les réalisatrices qui ont contribué à ces succès !",
			Category:  "news",
			ImageURL:  strptr("https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0?auto=format&fit=crop&q=80"),
			CreatedAt: now,
		},
	}

	for _, a := range articles {
		if _, err := q.CreateArticle(ctx, a); err != nil {
			return fmt.Errorf("seeding article %q: %w", a.Title, err)
		}
	}

	slog.Info("seeded demo articles", "count", len(articles))
	return nil
}

func strptr(s string) *string {
	return &s
}
